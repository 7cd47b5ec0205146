package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest alta de empresa (tenant).
type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	TaxID   string `json:"tax_id" validate:"omitempty,max=50"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyModuleResponse activación de un módulo SaaS.
type CompanyModuleResponse struct {
	ModuleName   string          `json:"module_name"`
	IsActive     bool            `json:"is_active"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	ActivatedAt  time.Time       `json:"activated_at"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
}
