package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain/access"
	pkgjwt "github.com/jhoicas/gestion-api/pkg/jwt"
)

// Locals keys para los claims y el grant de empresa resuelto en Fiber.
const (
	LocalClaims       = "auth_claims"
	LocalCompanyGrant = "company_grant"
)

// AuthMiddleware valida el Bearer Token y deja los claims decodificados en
// c.Locals. Primer eslabón de la cadena: firma y expiración; los chequeos de
// empresa y permiso vienen después (RequireCompany / RequirePermission).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, _, err := auth.Authorize(jwtSecret, tokenString, "", "")
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireCompany verifica que la empresa de la ruta (:companyId) esté dentro
// del alcance de la credencial y deja el grant resuelto en c.Locals.
// Debe usarse DESPUÉS de AuthMiddleware. El snapshot del token es
// autoritativo: aquí no se consulta la DB.
func RequireCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credencial no verificada"})
		}
		companyID := c.Params("companyId")
		if companyID == "" {
			companyID = c.Get("X-Company-ID")
		}
		if companyID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id requerido"})
		}
		grant, ok := claims.GrantFor(companyID)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "COMPANY_MISMATCH", Message: "la empresa no está en el alcance de la credencial"})
		}
		c.Locals(LocalCompanyGrant, grant)
		return c.Next()
	}
}

// RequirePermission verifica que el grant de empresa resuelto contenga el
// permiso requerido (o el wildcard). Debe usarse DESPUÉS de RequireCompany.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		grant := GetCompanyGrant(c)
		if grant == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "COMPANY_MISMATCH", Message: "se requiere contexto de empresa"})
		}
		if !access.Grants(grant.Permissions, permission) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MISSING_PERMISSION", Message: "falta el permiso '" + permission + "'"})
		}
		return c.Next()
	}
}

// GetClaims devuelve los claims del contexto (después del middleware de auth).
func GetClaims(c *fiber.Ctx) *pkgjwt.Claims {
	v := c.Locals(LocalClaims)
	if v == nil {
		return nil
	}
	claims, _ := v.(*pkgjwt.Claims)
	return claims
}

// GetCompanyGrant devuelve el grant de empresa resuelto (después de RequireCompany).
func GetCompanyGrant(c *fiber.Ctx) *pkgjwt.CompanyGrant {
	v := c.Locals(LocalCompanyGrant)
	if v == nil {
		return nil
	}
	grant, _ := v.(*pkgjwt.CompanyGrant)
	return grant
}

// GetUserID devuelve el subject de la credencial.
func GetUserID(c *fiber.Ctx) string {
	if claims := GetClaims(c); claims != nil {
		return claims.Subject
	}
	return ""
}
