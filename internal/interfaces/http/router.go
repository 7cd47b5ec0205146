package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CompanyUC     *usecase.CompanyUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	CustomRoleUC  *usecase.CustomRoleUseCase
	ModuleService *usecase.ModuleService
	JWTSecret     string
}

// Router registra las rutas de la API. Las rutas por empresa encadenan los
// tres eslabones del guard: AuthMiddleware → RequireCompany → RequirePermission.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas acotadas a una empresa del alcance de la credencial
	scoped := protected.Group("/companies/:companyId", RequireCompany())
	scoped.Get("/modules", companyHandler.ListModules)

	// Administración de empleados y custom roles (módulo RRHH)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.CustomRoleUC)
	hr := scoped.Group("/", RequireModule(entity.ModuleHR, deps.ModuleService))
	hr.Post("/employees", RequirePermission("hr:write"), employeeHandler.Create)
	hr.Get("/employees", RequirePermission("hr:read"), employeeHandler.List)
	hr.Put("/employees/:id/access", RequirePermission("hr:write"), employeeHandler.UpdateAccess)
	hr.Post("/roles", RequirePermission("hr:write"), employeeHandler.CreateRole)
	hr.Get("/roles", RequirePermission("hr:read"), employeeHandler.ListRoles)
}
