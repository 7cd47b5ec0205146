package entity

import "time"

// Roles de empleado dentro de una empresa.
const (
	RoleOwner      = "OWNER" // computado para dueños, nunca se persiste
	RoleAdmin      = "ADMIN"
	RoleManager    = "MANAGER"
	RoleEmployee   = "EMPLOYEE"
	RoleViewer     = "VIEWER"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// Estados válidos de un empleado.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// Employee representa a un trabajador de una empresa. Puede autenticarse con
// una contraseña temporal (opcionalmente acotada en el tiempo) mientras no
// tenga cuenta de plataforma propia.
type Employee struct {
	ID                    string
	CompanyID             string
	Email                 string
	Name                  string
	Role                  string // ADMIN, MANAGER, EMPLOYEE, VIEWER, SUPER_ADMIN
	Status                string // active, suspended
	TempPasswordHash      *string    // nil = no puede autenticarse directamente
	TempPasswordExpiresAt *time.Time // nil = sin vencimiento
	Permissions           []string   // grants directos en formato dominio:verbo
	CustomRoleID          *string
	CustomRole            *CustomRole // cargado junto al empleado si existe
	LastLogin             *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
