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

// CustomRoleUseCase administración de paquetes de permisos por empresa.
type CustomRoleUseCase struct {
	roleRepo repository.CustomRoleRepository
}

// NewCustomRoleUseCase construye el caso de uso de custom roles.
func NewCustomRoleUseCase(roleRepo repository.CustomRoleRepository) *CustomRoleUseCase {
	return &CustomRoleUseCase{roleRepo: roleRepo}
}

// Create da de alta un custom role con sus códigos de permiso.
func (uc *CustomRoleUseCase) Create(ctx context.Context, companyID string, in dto.CreateCustomRoleRequest) (*dto.CustomRoleResponse, error) {
	if companyID == "" || in.Name == "" || len(in.Permissions) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	r := &entity.CustomRole{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Permissions: in.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roleRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toCustomRoleResponse(r), nil
}

// ListByCompany devuelve los custom roles de la empresa.
func (uc *CustomRoleUseCase) ListByCompany(ctx context.Context, companyID string) ([]*dto.CustomRoleResponse, error) {
	list, err := uc.roleRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomRoleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toCustomRoleResponse(r))
	}
	return out, nil
}

func toCustomRoleResponse(r *entity.CustomRole) *dto.CustomRoleResponse {
	return &dto.CustomRoleResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		Name:        r.Name,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
	}
}
