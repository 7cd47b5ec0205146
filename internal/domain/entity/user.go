package entity

import "time"

// Roles globales de un User (cuenta de plataforma).
const (
	GlobalRoleNone       = "NONE"
	GlobalRoleSuperAdmin = "SUPER_ADMIN"
)

// User representa una cuenta registrada de la plataforma. Puede ser dueño de
// varias empresas y además trabajar como empleado en otras (mismo email).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	GlobalRole   string // NONE, SUPER_ADMIN
	Status       string // active, suspended
	Ownerships   []CompanyOwnership
	Employments  []Employee
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CompanyOwnership relación de propiedad entre un User y una Company.
// El rol OWNER es implícito: nunca se almacena ni consulta la tabla de roles.
type CompanyOwnership struct {
	CompanyID   string
	CompanyName string
}
