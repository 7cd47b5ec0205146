package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/domain/access"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de roles base
// ──────────────────────────────────────────────────────────────────────────────

func TestBasePermissions_ManagerTieneNueveCodigos(t *testing.T) {
	perms := access.BasePermissions(entity.RoleManager)
	assert.ElementsMatch(t, []string{
		"stock:read", "stock:write",
		"crm:read", "crm:write",
		"finance:read", "finance:write",
		"hr:read", "hr:write",
		"site:write",
	}, perms, "MANAGER debe tener exactamente la lista base fija")
}

func TestBasePermissions_RolDesconocidoEsVacio(t *testing.T) {
	assert.Empty(t, access.BasePermissions("CONTRACTOR"),
		"un rol desconocido aporta el conjunto vacío, nunca error")
	assert.Empty(t, access.BasePermissions(""))
}

func TestBasePermissions_DevuelveCopia(t *testing.T) {
	perms := access.BasePermissions(entity.RoleViewer)
	require.NotEmpty(t, perms)
	perms[0] = "mutado:mutado"

	again := access.BasePermissions(entity.RoleViewer)
	assert.NotContains(t, again, "mutado:mutado",
		"mutar el resultado no debe afectar la tabla interna")
}

// ──────────────────────────────────────────────────────────────────────────────
// Aggregate — unión de base + grants directos + custom role
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_AdminYSuperAdminSiempreWildcard(t *testing.T) {
	custom := &entity.CustomRole{Permissions: []string{"finance:write", "hr:read"}}
	for _, role := range []string{entity.RoleAdmin, entity.RoleSuperAdmin} {
		got := access.Aggregate(role, []string{"stock:read", "cms:write"}, custom)
		assert.Equal(t, []string{access.Wildcard}, got,
			"rol %s debe resolver a wildcard sin importar grants ni custom role", role)
	}
}

// Escenario: MANAGER sin grants ni custom role → exactamente la lista base.
func TestAggregate_ManagerSinExtrasEsLaBase(t *testing.T) {
	got := access.Aggregate(entity.RoleManager, nil, nil)
	assert.ElementsMatch(t, access.BasePermissions(entity.RoleManager), got)
	assert.Len(t, got, 9)
}

// Escenario: EMPLOYEE + grant directo hr:write + custom role con finance:write.
func TestAggregate_EmployeeConGrantYCustomRole(t *testing.T) {
	custom := &entity.CustomRole{Name: "contable", Permissions: []string{"finance:write"}}
	got := access.Aggregate(entity.RoleEmployee, []string{"hr:write"}, custom)
	assert.ElementsMatch(t, []string{
		"stock:read", "stock:write", "crm:read", "crm:write", "finance:read",
		"hr:write", "finance:write",
	}, got)
}

func TestAggregate_DuplicadosColapsan(t *testing.T) {
	custom := &entity.CustomRole{Permissions: []string{"stock:read", "crm:read", "crm:read"}}
	got := access.Aggregate(entity.RoleViewer, []string{"stock:read", "stock:read", "hr:read"}, custom)

	seen := make(map[string]int)
	for _, p := range got {
		seen[p]++
	}
	for code, n := range seen {
		assert.Equal(t, 1, n, "el código %s aparece %d veces", code, n)
	}
	assert.ElementsMatch(t, []string{"stock:read", "crm:read", "finance:read", "hr:read"}, got)
}

func TestAggregate_OrdenDeGrantsNoImporta(t *testing.T) {
	a := access.Aggregate(entity.RoleEmployee, []string{"hr:write", "cms:write"}, nil)
	b := access.Aggregate(entity.RoleEmployee, []string{"cms:write", "hr:write"}, nil)
	assert.ElementsMatch(t, a, b, "la agregación es un conjunto: el orden nunca es significativo")
}

// Propiedad de unión: agregar más grants nunca quita permisos.
func TestAggregate_EsMonotona(t *testing.T) {
	g1 := []string{"hr:write"}
	g2 := append([]string{}, g1...)
	g2 = append(g2, "cms:write", "site:read")

	base := access.Aggregate(entity.RoleViewer, g1, nil)
	ampliado := access.Aggregate(entity.RoleViewer, g2, nil)
	assert.Subset(t, ampliado, base, "aggregate(G1 ∪ G2) debe contener aggregate(G1)")
}

func TestAggregate_GrantsVaciosYSinCustomRoleNoAportan(t *testing.T) {
	got := access.Aggregate(entity.RoleViewer, []string{""}, nil)
	assert.ElementsMatch(t, access.BasePermissions(entity.RoleViewer), got,
		"grants vacíos y custom role ausente son contribuciones vacías, no errores")
}

// ──────────────────────────────────────────────────────────────────────────────
// Grants — predicado central con wildcard
// ──────────────────────────────────────────────────────────────────────────────

func TestGrants_PermisoExacto(t *testing.T) {
	set := []string{"stock:read", "hr:write"}
	assert.True(t, access.Grants(set, "hr:write"))
	assert.False(t, access.Grants(set, "hr:read"))
}

func TestGrants_WildcardCortaTodo(t *testing.T) {
	set := []string{access.Wildcard}
	assert.True(t, access.Grants(set, "stock:write"))
	assert.True(t, access.Grants(set, "cualquier:cosa"))
}

func TestGrants_ConjuntoVacioNoConcede(t *testing.T) {
	assert.False(t, access.Grants(nil, "stock:read"))
	assert.False(t, access.Grants([]string{}, "stock:read"))
}
