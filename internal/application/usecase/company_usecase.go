package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// CompanyUseCase operaciones sobre empresas (tenants).
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso de empresas.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// Create da de alta una empresa en estado activo.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCompanyResponse(c), nil
}

// GetByID devuelve una empresa o ErrNotFound.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	c, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(c), nil
}

// List devuelve empresas paginadas.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) ([]*dto.CompanyResponse, error) {
	list, err := uc.companyRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCompanyResponse(c))
	}
	return out, nil
}

// ListModules devuelve las activaciones de módulos SaaS de la empresa.
func (uc *CompanyUseCase) ListModules(ctx context.Context, companyID string) ([]*dto.CompanyModuleResponse, error) {
	mods, err := uc.companyRepo.ListModules(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyModuleResponse, 0, len(mods))
	for _, m := range mods {
		out = append(out, &dto.CompanyModuleResponse{
			ModuleName:   m.ModuleName,
			IsActive:     m.IsActive,
			MonthlyPrice: m.MonthlyPrice,
			ActivatedAt:  m.ActivatedAt,
			ExpiresAt:    m.ExpiresAt,
		})
	}
	return out, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}
