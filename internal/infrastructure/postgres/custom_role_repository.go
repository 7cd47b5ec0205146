package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.CustomRoleRepository = (*CustomRoleRepo)(nil)

// CustomRoleRepo implementación del puerto CustomRoleRepository sobre PostgreSQL.
type CustomRoleRepo struct {
	pool *pgxpool.Pool
}

// NewCustomRoleRepository construye el adaptador de persistencia para custom roles.
func NewCustomRoleRepository(pool *pgxpool.Pool) *CustomRoleRepo {
	return &CustomRoleRepo{pool: pool}
}

// Create persiste un nuevo custom role.
func (r *CustomRoleRepo) Create(ctx context.Context, role *entity.CustomRole) error {
	query := `
		INSERT INTO custom_roles (id, company_id, name, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		role.ID, role.CompanyID, role.Name, role.Permissions, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert custom role: %w", err)
	}
	return nil
}

// GetByID obtiene un custom role por ID.
func (r *CustomRoleRepo) GetByID(ctx context.Context, id string) (*entity.CustomRole, error) {
	return loadCustomRole(ctx, r.pool, id)
}

// ListByCompany devuelve los custom roles de una empresa.
func (r *CustomRoleRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.CustomRole, error) {
	query := `
		SELECT id, company_id, name, permissions, created_at, updated_at
		FROM custom_roles WHERE company_id = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list custom roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomRole
	for rows.Next() {
		var cr entity.CustomRole
		if err := rows.Scan(&cr.ID, &cr.CompanyID, &cr.Name, &cr.Permissions, &cr.CreatedAt, &cr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan custom role: %w", err)
		}
		list = append(list, &cr)
	}
	return list, rows.Err()
}

// loadCustomRole consulta un custom role; lo comparten los adaptadores de
// empleados y de custom roles (mismo paquete).
func loadCustomRole(ctx context.Context, pool *pgxpool.Pool, id string) (*entity.CustomRole, error) {
	query := `
		SELECT id, company_id, name, permissions, created_at, updated_at
		FROM custom_roles WHERE id = $1`
	var cr entity.CustomRole
	err := pool.QueryRow(ctx, query, id).Scan(
		&cr.ID, &cr.CompanyID, &cr.Name, &cr.Permissions, &cr.CreatedAt, &cr.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get custom role: %w", err)
	}
	return &cr, nil
}
