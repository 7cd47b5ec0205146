package entity

import "time"

// CustomRole paquete de permisos con nombre, definido por empresa.
// Varios empleados pueden referenciar el mismo CustomRole; es independiente
// del rol grueso del empleado.
type CustomRole struct {
	ID          string
	CompanyID   string
	Name        string
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
