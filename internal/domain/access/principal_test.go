package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/domain/access"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

func TestPrincipalFromUser_PropiedadesYEmpleos(t *testing.T) {
	u := &entity.User{
		ID:         "u-1",
		Email:      "dueno@acme.co",
		Name:       "Dueño",
		GlobalRole: entity.GlobalRoleNone,
		Ownerships: []entity.CompanyOwnership{
			{CompanyID: "c-1", CompanyName: "Acme"},
			{CompanyID: "c-2", CompanyName: "Beta"},
		},
		Employments: []entity.Employee{
			{ID: "e-9", CompanyID: "c-3", Email: "dueno@acme.co", Role: entity.RoleViewer, Status: entity.StatusActive},
		},
	}

	p := access.PrincipalFromUser(u)
	assert.Equal(t, access.KindUser, p.Kind)
	assert.Equal(t, []string{"c-1", "c-2"}, p.OwnedCompanyIDs())
	require.Len(t, p.Memberships, 3)

	// Las propiedades resuelven a OWNER + wildcard sin consultar la tabla de roles.
	assert.Equal(t, entity.RoleOwner, p.Memberships[0].Role)
	assert.Equal(t, []string{access.Wildcard}, p.Memberships[0].EffectivePermissions())

	// El empleo conserva su rol acotado.
	assert.Equal(t, entity.RoleViewer, p.Memberships[2].Role)
	assert.ElementsMatch(t, access.BasePermissions(entity.RoleViewer), p.Memberships[2].EffectivePermissions())
}

func TestPrincipalFromEmployee_VistaSinteticaUnicaMembresia(t *testing.T) {
	e := &entity.Employee{
		ID:          "e-1",
		CompanyID:   "c-1",
		Email:       "emp@acme.co",
		Name:        "Empleada",
		Role:        entity.RoleEmployee,
		Status:      entity.StatusActive,
		Permissions: []string{"hr:write"},
	}

	p := access.PrincipalFromEmployee(e)
	assert.Equal(t, access.KindEmployee, p.Kind)
	assert.Empty(t, p.GlobalRole, "la vista de empleado no reporta rol global")
	assert.Empty(t, p.OwnedCompanyIDs(), "la vista de empleado no tiene propiedades")
	require.Len(t, p.Memberships, 1)
	assert.Equal(t, "c-1", p.Memberships[0].CompanyID)
	assert.Contains(t, p.Memberships[0].EffectivePermissions(), "hr:write")
}
