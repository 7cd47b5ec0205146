package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
)

// EmployeeHandler alta y administración de empleados y custom roles.
// Todas las rutas están acotadas a la empresa de la URL; el middleware ya
// verificó alcance y permiso antes de llegar aquí.
type EmployeeHandler struct {
	employees *usecase.EmployeeUseCase
	roles     *usecase.CustomRoleUseCase
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(employees *usecase.EmployeeUseCase, roles *usecase.CustomRoleUseCase) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, roles: roles}
}

// Create godoc
// @Summary      Dar de alta un empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "company id"
// @Param        body  body  dto.CreateEmployeeRequest  true  "datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.employees.Create(c.Context(), c.Params("companyId"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, name y role son requeridos"})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "ya existe un empleado con ese email en la empresa"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ROLE_NOT_FOUND", Message: "el custom role no existe en esta empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empleados de la empresa
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "company id"
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/companies/{companyId}/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.employees.ListByCompany(c.Context(), c.Params("companyId"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateAccess godoc
// @Summary      Cambiar rol, grants o custom role de un empleado
// @Description  El cambio aplica en la próxima emisión de credencial; las vigentes conservan su snapshot.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "company id"
// @Param        id         path  string  true  "employee id"
// @Param        body  body  dto.UpdateEmployeeAccessRequest  true  "cambios de acceso"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/employees/{id}/access [put]
func (h *EmployeeHandler) UpdateAccess(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeAccessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.employees.UpdateAccess(c.Context(), c.Params("companyId"), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado o custom role inexistente en esta empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateRole godoc
// @Summary      Crear un custom role
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "company id"
// @Param        body  body  dto.CreateCustomRoleRequest  true  "nombre y permisos"
// @Success      201   {object}  dto.CustomRoleResponse
// @Router       /api/companies/{companyId}/roles [post]
func (h *EmployeeHandler) CreateRole(c *fiber.Ctx) error {
	var in dto.CreateCustomRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.roles.Create(c.Context(), c.Params("companyId"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y permissions son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRoles godoc
// @Summary      Listar custom roles de la empresa
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "company id"
// @Success      200  {array}  dto.CustomRoleResponse
// @Router       /api/companies/{companyId}/roles [get]
func (h *EmployeeHandler) ListRoles(c *fiber.Ctx) error {
	out, err := h.roles.ListByCompany(c.Context(), c.Params("companyId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
