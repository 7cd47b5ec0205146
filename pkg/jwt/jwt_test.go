package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/gestion-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "gestion-api-test"
)

func testPayload() pkgjwt.Payload {
	return pkgjwt.Payload{
		Subject:         "00000000-0000-0000-0000-000000000001",
		Email:           "ana@acme.co",
		GlobalRole:      "NONE",
		OwnedCompanyIDs: []string{"c-1"},
		CompanyGrants: []pkgjwt.CompanyGrant{
			{CompanyID: "c-1", Role: "OWNER", Status: "active", Permissions: []string{"*"}},
			{CompanyID: "c-2", Role: "EMPLOYEE", Status: "active", Permissions: []string{"stock:read", "crm:read"}},
		},
	}
}

// Round-trip: verify(issue(p)) debe devolver claims estructuralmente iguales
// al payload de emisión (módulo iat/exp).
func TestJWT_GenerateAndParse_RoundTrip(t *testing.T) {
	p := testPayload()
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 60, p)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, p.Subject, claims.Subject)
	assert.Equal(t, p.Email, claims.Email)
	assert.Equal(t, p.GlobalRole, claims.GlobalRole)
	assert.Equal(t, p.OwnedCompanyIDs, claims.OwnedCompanyIDs)
	assert.Equal(t, p.CompanyGrants, claims.CompanyGrants)
	assert.Equal(t, testIssuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testIssuer, -1, testPayload())
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 60, testPayload())
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testIssuer, 60, testPayload())
	assert.Error(t, err)
	_, err = pkgjwt.Parse("", "cualquier.token.aqui")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// GrantFor — resolución de alcance de empresa
// ──────────────────────────────────────────────────────────────────────────────

func TestGrantFor_EntradaExplicita(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 60, testPayload())
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	g, ok := claims.GrantFor("c-2")
	require.True(t, ok)
	assert.Equal(t, "EMPLOYEE", g.Role)
	assert.ElementsMatch(t, []string{"stock:read", "crm:read"}, g.Permissions)
}

func TestGrantFor_EmpresaFueraDeAlcance(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 60, testPayload())
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	_, ok := claims.GrantFor("c-999")
	assert.False(t, ok)
}

// Un token de otro emisor que solo lista la empresa en ownedCompanyIds debe
// resolver a dueño con autoridad irrestricta.
func TestGrantFor_SintetizaEntradaDeDueno(t *testing.T) {
	p := pkgjwt.Payload{
		Subject:         "u-1",
		Email:           "ana@acme.co",
		OwnedCompanyIDs: []string{"c-7"},
	}
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 60, p)
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	g, ok := claims.GrantFor("c-7")
	require.True(t, ok)
	assert.Equal(t, "OWNER", g.Role)
	assert.Equal(t, []string{"*"}, g.Permissions)
}
