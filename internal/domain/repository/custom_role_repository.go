package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// CustomRoleRepository define el puerto de persistencia para CustomRole.
type CustomRoleRepository interface {
	Create(ctx context.Context, r *entity.CustomRole) error
	GetByID(ctx context.Context, id string) (*entity.CustomRole, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.CustomRole, error)
}
