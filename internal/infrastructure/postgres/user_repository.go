package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// FindByEmail/GetByID devuelven el agregado completo: propiedades de empresa
// y perfiles de empleado asociados al mismo email, con grants y custom role.
type UserRepo struct {
	pool *pgxpool.Pool
	emp  *EmployeeRepo
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool, emp: NewEmployeeRepository(pool)}
}

// Create persiste una nueva cuenta de plataforma.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, global_role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.GlobalRole, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID con sus relaciones cargadas.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.find(ctx, `WHERE id = $1`, id)
}

// FindByEmail obtiene un usuario por email con sus relaciones cargadas.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(ctx, `WHERE email = $1`, email)
}

func (r *UserRepo) find(ctx context.Context, where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, name, global_role, status, created_at, updated_at
		FROM users ` + where + ` LIMIT 1`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.GlobalRole, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := r.loadOwnerships(ctx, &u); err != nil {
		return nil, err
	}
	employments, err := r.emp.findByUserEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	u.Employments = employments
	return &u, nil
}

// loadOwnerships carga las empresas de las que el usuario es dueño.
func (r *UserRepo) loadOwnerships(ctx context.Context, u *entity.User) error {
	query := `SELECT id, name FROM companies WHERE owner_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, u.ID)
	if err != nil {
		return fmt.Errorf("list ownerships: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var o entity.CompanyOwnership
		if err := rows.Scan(&o.CompanyID, &o.CompanyName); err != nil {
			return fmt.Errorf("scan ownership: %w", err)
		}
		u.Ownerships = append(u.Ownerships, o)
	}
	return rows.Err()
}
