package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeUseCase alta y administración de empleados por empresa.
// Los cambios de rol/grants solo afectan a credenciales emitidas después;
// las vigentes conservan su snapshot hasta expirar.
type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
	roleRepo     repository.CustomRoleRepository
	bcryptCost   int
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository, roleRepo repository.CustomRoleRepository, bcryptCost int) *EmployeeUseCase {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &EmployeeUseCase{employeeRepo: employeeRepo, roleRepo: roleRepo, bcryptCost: bcryptCost}
}

// Create da de alta un empleado. La contraseña temporal (si viene) se hashea
// con bcrypt; TempPasswordDays > 0 acota su ventana de uso.
func (uc *EmployeeUseCase) Create(ctx context.Context, companyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if companyID == "" || in.Email == "" || in.Name == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.employeeRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	// Unicidad de membresía: a lo sumo un registro de empleado por empresa.
	if existing != nil && existing.CompanyID == companyID {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	e := &entity.Employee{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Email:       in.Email,
		Name:        in.Name,
		Role:        in.Role,
		Status:      entity.StatusActive,
		Permissions: in.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.CustomRoleID != "" {
		role, err := uc.roleRepo.GetByID(ctx, in.CustomRoleID)
		if err != nil {
			return nil, err
		}
		if role == nil || role.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		e.CustomRoleID = &role.ID
	}
	if in.TempPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.TempPassword), uc.bcryptCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		e.TempPasswordHash = &h
		if in.TempPasswordDays > 0 {
			exp := now.AddDate(0, 0, in.TempPasswordDays)
			e.TempPasswordExpiresAt = &exp
		}
	}
	if err := uc.employeeRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// UpdateAccess cambia rol, estado, grants directos y custom role de un empleado.
func (uc *EmployeeUseCase) UpdateAccess(ctx context.Context, companyID, employeeID string, in dto.UpdateEmployeeAccessRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e == nil || e.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Role != "" {
		e.Role = in.Role
	}
	if in.Status != "" {
		e.Status = in.Status
	}
	if in.Permissions != nil {
		e.Permissions = in.Permissions
	}
	if in.CustomRoleID != nil {
		if *in.CustomRoleID == "" {
			e.CustomRoleID = nil
		} else {
			role, err := uc.roleRepo.GetByID(ctx, *in.CustomRoleID)
			if err != nil {
				return nil, err
			}
			if role == nil || role.CompanyID != companyID {
				return nil, domain.ErrNotFound
			}
			e.CustomRoleID = in.CustomRoleID
		}
	}
	e.UpdatedAt = time.Now()
	if err := uc.employeeRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// ListByCompany devuelve los empleados de la empresa, paginados.
func (uc *EmployeeUseCase) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*dto.EmployeeResponse, error) {
	list, err := uc.employeeRepo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:           e.ID,
		CompanyID:    e.CompanyID,
		Email:        e.Email,
		Name:         e.Name,
		Role:         e.Role,
		Status:       e.Status,
		Permissions:  e.Permissions,
		CustomRoleID: e.CustomRoleID,
		LastLogin:    e.LastLogin,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
