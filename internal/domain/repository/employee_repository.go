package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
// FindByEmail carga grants directos y custom role junto al empleado.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	// UpdateLastLogin registra el último acceso; es un side effect best-effort
	// del login, el caller puede ignorar el error.
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
