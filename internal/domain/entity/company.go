package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company representa una organización/tenant de la plataforma.
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Módulos SaaS de la plataforma (deben coincidir con el CHECK de la tabla company_modules).
const (
	ModuleStock     = "stock"
	ModuleCRM       = "crm"
	ModuleHR        = "hr"
	ModuleCMS       = "cms"
	ModuleInvoicing = "invoicing"
)

// CompanyModule representa la activación de un módulo SaaS en una empresa.
type CompanyModule struct {
	ID           string
	CompanyID    string
	ModuleName   string // ver constantes Module*
	IsActive     bool
	MonthlyPrice decimal.Decimal
	ActivatedAt  time.Time
	ExpiresAt    *time.Time // nil = sin vencimiento
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
