package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(ctx context.Context, c *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	// HasActiveModule informa si la empresa tiene el módulo activo y sin vencer.
	HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error)
	ListModules(ctx context.Context, companyID string) ([]*entity.CompanyModule, error)
}
