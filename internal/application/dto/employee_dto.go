package dto

import "time"

// CreateEmployeeRequest alta de empleado por un admin de la empresa.
// La contraseña temporal es opcional; sin ella el empleado no puede
// autenticarse directamente.
type CreateEmployeeRequest struct {
	Email            string   `json:"email" validate:"required,email"`
	Name             string   `json:"name" validate:"required,min=1,max=200"`
	Role             string   `json:"role" validate:"required,oneof=ADMIN MANAGER EMPLOYEE VIEWER"`
	TempPassword     string   `json:"temp_password" validate:"omitempty,min=8"`
	TempPasswordDays int      `json:"temp_password_days" validate:"omitempty,min=1,max=90"` // 0 = sin vencimiento
	Permissions      []string `json:"permissions"`
	CustomRoleID     string   `json:"custom_role_id" validate:"omitempty,uuid"`
}

// UpdateEmployeeAccessRequest cambia rol, grants directos y custom role.
// El cambio se refleja en la próxima emisión de credencial, no en las vigentes.
type UpdateEmployeeAccessRequest struct {
	Role         string   `json:"role" validate:"omitempty,oneof=ADMIN MANAGER EMPLOYEE VIEWER"`
	Permissions  []string `json:"permissions"`
	CustomRoleID *string  `json:"custom_role_id"`
	Status       string   `json:"status" validate:"omitempty,oneof=active suspended"`
}

// EmployeeResponse salida de un empleado (sin hashes).
type EmployeeResponse struct {
	ID           string     `json:"id"`
	CompanyID    string     `json:"company_id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	Permissions  []string   `json:"permissions"`
	CustomRoleID *string    `json:"custom_role_id,omitempty"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateCustomRoleRequest alta de un paquete de permisos reutilizable.
type CreateCustomRoleRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=120"`
	Permissions []string `json:"permissions" validate:"required,min=1"`
}

// CustomRoleResponse salida de un custom role.
type CustomRoleResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}
