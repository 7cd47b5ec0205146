package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

const employeeColumns = `
	id, company_id, email, name, role, status,
	temp_password_hash, temp_password_expires_at,
	permissions, custom_role_id, last_login, created_at, updated_at`

// Create persiste un nuevo empleado. La unicidad (company_id, email) la
// garantiza el constraint de la tabla.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, company_id, email, name, role, status,
			temp_password_hash, temp_password_expires_at, permissions, custom_role_id,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.CompanyID, e.Email, e.Name, e.Role, e.Status,
		e.TempPasswordHash, e.TempPasswordExpiresAt, e.Permissions, e.CustomRoleID,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID con su custom role cargado.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	if err := r.attachCustomRole(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// FindByEmail obtiene un empleado por email con grants y custom role.
func (r *EmployeeRepo) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1 LIMIT 1`
	e, err := scanEmployee(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by email: %w", err)
	}
	if err := r.attachCustomRole(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// findByUserEmail carga todos los perfiles de empleado asociados a un email
// (un usuario de plataforma puede trabajar en varias empresas). Lo usa el
// adaptador de usuarios para armar el agregado completo.
func (r *EmployeeRepo) findByUserEmail(ctx context.Context, email string) ([]entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list employees by email: %w", err)
	}
	defer rows.Close()
	var list []entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range list {
		if err := r.attachCustomRole(ctx, &list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// ListByCompany lista empleados por empresa con paginación.
func (r *EmployeeRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + `
		FROM employees WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza rol, estado, grants y custom role de un empleado.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, role = $3, status = $4,
			temp_password_hash = $5, temp_password_expires_at = $6,
			permissions = $7, custom_role_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Name, e.Role, e.Status,
		e.TempPasswordHash, e.TempPasswordExpiresAt,
		e.Permissions, e.CustomRoleID, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// UpdateLastLogin registra el último acceso del empleado.
func (r *EmployeeRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE employees SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update last_login: %w", err)
	}
	return nil
}

// attachCustomRole carga el custom role referenciado, si existe.
func (r *EmployeeRepo) attachCustomRole(ctx context.Context, e *entity.Employee) error {
	if e.CustomRoleID == nil {
		return nil
	}
	role, err := loadCustomRole(ctx, r.pool, *e.CustomRoleID)
	if err != nil {
		return err
	}
	e.CustomRole = role
	return nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.Email, &e.Name, &e.Role, &e.Status,
		&e.TempPasswordHash, &e.TempPasswordExpiresAt,
		&e.Permissions, &e.CustomRoleID, &e.LastLogin, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
