package dto

import "time"

// RegisterRequest entrada para registro de cuenta de plataforma (único camino
// de registro; los empleados se dan de alta desde el módulo de RRHH).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
}

// LoginRequest entrada para login (cuenta de plataforma o empleado con
// contraseña temporal, mismo endpoint).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CompanyGrantView entrada por empresa del resumen de credencial.
type CompanyGrantView struct {
	CompanyID   string   `json:"companyId"`
	Role        string   `json:"role"`
	Status      string   `json:"status"`
	Permissions []string `json:"permissions"`
}

// CredentialSummary vista en claro del claim set emitido. Es solo para que el
// cliente pinte su UI; el servidor nunca autoriza con esta estructura, solo
// con el token firmado.
type CredentialSummary struct {
	Subject         string             `json:"sub"`
	Email           string             `json:"email"`
	GlobalRole      string             `json:"globalRole,omitempty"`
	OwnedCompanyIDs []string           `json:"ownedCompanyIds,omitempty"`
	CompanyGrants   []CompanyGrantView `json:"companyGrants"`
}

// LoginResponse salida del login: token firmado + resumen decodificable.
type LoginResponse struct {
	Token  string            `json:"token"`
	Claims CredentialSummary `json:"claims"`
}

// UserResponse salida de una cuenta de plataforma (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	GlobalRole string    `json:"globalRole"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
