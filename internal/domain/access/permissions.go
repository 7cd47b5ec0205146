package access

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// Wildcard es el código reservado que concede autoridad total dentro del
// alcance de la credencial. Corta en seco cualquier verificación.
const Wildcard = "*"

// rolePermissions mapea cada rol grueso a su conjunto base de permisos.
// Es la única fuente de verdad del modelo de autorización. Los permisos usan
// el formato dominio:verbo; ADMIN y SUPER_ADMIN resuelven siempre al wildcard
// sin importar grants directos ni custom roles.
var rolePermissions = map[string][]string{
	entity.RoleAdmin:      {Wildcard},
	entity.RoleSuperAdmin: {Wildcard},
	entity.RoleManager: {
		"stock:read", "stock:write",
		"crm:read", "crm:write",
		"finance:read", "finance:write",
		"hr:read", "hr:write",
		"site:write",
	},
	entity.RoleEmployee: {
		"stock:read", "stock:write",
		"crm:read", "crm:write",
		"finance:read",
	},
	entity.RoleViewer: {
		"stock:read", "crm:read", "finance:read", "hr:read",
	},
}

// BasePermissions devuelve una copia del conjunto base de un rol.
// Roles desconocidos devuelven el conjunto vacío, nunca error.
func BasePermissions(role string) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// Aggregate calcula el conjunto efectivo de permisos de una membresía:
// base del rol ∪ grants directos ∪ permisos del custom role. El resultado es
// un conjunto sin duplicados y sin orden significativo. Función pura; debe
// calcularse en cada emisión de credencial, nunca cachearse entre emisiones.
func Aggregate(role string, directGrants []string, customRole *entity.CustomRole) []string {
	if HasWildcardRole(role) {
		return []string{Wildcard}
	}
	seen := make(map[string]struct{})
	var out []string
	add := func(codes []string) {
		for _, c := range codes {
			if c == "" {
				continue
			}
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	add(rolePermissions[role])
	add(directGrants)
	if customRole != nil {
		add(customRole.Permissions)
	}
	return out
}

// HasWildcardRole informa si el rol resuelve directamente al wildcard.
func HasWildcardRole(role string) bool {
	return role == entity.RoleAdmin || role == entity.RoleSuperAdmin
}

// Grants es el predicado central de autorización: el conjunto concede el
// permiso requerido si lo contiene o si contiene el wildcard. Todo chequeo
// de permisos del sistema pasa por aquí.
func Grants(permissions []string, required string) bool {
	for _, p := range permissions {
		if p == required || p == Wildcard {
			return true
		}
	}
	return false
}
