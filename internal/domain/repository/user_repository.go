package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// FindByEmail carga el agregado completo: propiedades y perfiles de empleado
// con sus grants y custom role, tal como lo necesita el resolver.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
