package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/domain"
	pkgjwt "github.com/jhoicas/gestion-api/pkg/jwt"
)

func tokenWithGrants(t *testing.T, grants ...pkgjwt.CompanyGrant) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 60, pkgjwt.Payload{
		Subject:       "u-1",
		Email:         "ana@acme.co",
		CompanyGrants: grants,
	})
	require.NoError(t, err)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadena de chequeos: firma → empresa → permiso
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorize_TokenValidoSinChequeosExtra(t *testing.T) {
	tok := tokenWithGrants(t)
	claims, grant, err := auth.Authorize(testSecret, tok, "", "")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Nil(t, grant, "sin empresa solicitada no hay grant resuelto")
}

func TestAuthorize_TokenInvalidoEsUnauthorized(t *testing.T) {
	_, _, err := auth.Authorize(testSecret, "token.invalido.aqui", "c-1", "stock:read")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthorize_TokenExpiradoEsUnauthorized(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, -1, pkgjwt.Payload{Subject: "u-1"})
	require.NoError(t, err)

	_, _, err = auth.Authorize(testSecret, tok, "", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthorize_EmpresaYPermisoDentroDelAlcance(t *testing.T) {
	tok := tokenWithGrants(t, pkgjwt.CompanyGrant{
		CompanyID: "c-1", Role: "MANAGER", Status: "active",
		Permissions: []string{"stock:read", "stock:write"},
	})
	claims, grant, err := auth.Authorize(testSecret, tok, "c-1", "stock:write")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	require.NotNil(t, grant)
	assert.Equal(t, "MANAGER", grant.Role)
}

// La empresa solicitada no está en la credencial: se deniega aunque el permiso
// exista para otra empresa.
func TestAuthorize_EmpresaFueraDeAlcanceEsForbidden(t *testing.T) {
	tok := tokenWithGrants(t, pkgjwt.CompanyGrant{
		CompanyID: "c-2", Role: "ADMIN", Status: "active", Permissions: []string{"*"},
	})
	_, _, err := auth.Authorize(testSecret, tok, "c-1", "stock:write")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthorize_PermisoAusenteEsForbidden(t *testing.T) {
	tok := tokenWithGrants(t, pkgjwt.CompanyGrant{
		CompanyID: "c-1", Role: "VIEWER", Status: "active",
		Permissions: []string{"stock:read"},
	})
	_, _, err := auth.Authorize(testSecret, tok, "c-1", "stock:write")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Wildcard en el grant de la empresa: cualquier permiso solicitado pasa.
func TestAuthorize_WildcardConcedeCualquierPermiso(t *testing.T) {
	tok := tokenWithGrants(t, pkgjwt.CompanyGrant{
		CompanyID: "X", Role: "ADMIN", Status: "active", Permissions: []string{"*"},
	})
	_, grant, err := auth.Authorize(testSecret, tok, "X", "stock:write")
	require.NoError(t, err)
	assert.Equal(t, []string{"*"}, grant.Permissions)

	_, _, err = auth.Authorize(testSecret, tok, "X", "algo:inventado")
	assert.NoError(t, err, "el wildcard corta cualquier verificación de permiso")
}

func TestAuthorize_PermisoSinEmpresaEsForbidden(t *testing.T) {
	tok := tokenWithGrants(t, pkgjwt.CompanyGrant{
		CompanyID: "c-1", Role: "ADMIN", Status: "active", Permissions: []string{"*"},
	})
	_, _, err := auth.Authorize(testSecret, tok, "", "stock:write")
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"verificar un permiso requiere contexto de empresa")
}
