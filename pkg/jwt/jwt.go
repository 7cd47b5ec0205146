package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CompanyGrant es la entrada por empresa del claim set: rol, estado y el
// snapshot de permisos calculado en la emisión. Los nombres JSON son contrato
// estable con los demás servicios de la plataforma.
type CompanyGrant struct {
	CompanyID   string   `json:"companyId"`
	Role        string   `json:"role"`
	Status      string   `json:"status"`
	Permissions []string `json:"permissions"`
}

// Claims incluye los claims estándar JWT más los campos propios de la
// plataforma. El token es autocontenido: el middleware autoriza con este
// snapshot sin volver a consultar la DB; un cambio de permisos solo se
// observa al re-emitir (próximo login).
type Claims struct {
	jwt.RegisteredClaims
	Email           string         `json:"email"`
	GlobalRole      string         `json:"globalRole,omitempty"`
	OwnedCompanyIDs []string       `json:"ownedCompanyIds,omitempty"`
	CompanyGrants   []CompanyGrant `json:"companyGrants,omitempty"`
}

// Payload datos de aplicación a firmar (los claims registrados los añade Generate).
type Payload struct {
	Subject         string
	Email           string
	GlobalRole      string
	OwnedCompanyIDs []string
	CompanyGrants   []CompanyGrant
}

// Generate firma un token HS256 con el payload y una expiración fija.
func Generate(secret, issuer string, expMinutes int, p Payload) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email:           p.Email,
		GlobalRole:      p.GlobalRole,
		OwnedCompanyIDs: p.OwnedCompanyIDs,
		CompanyGrants:   p.CompanyGrants,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims decodificados.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// GrantFor busca la entrada de la empresa solicitada. Si la empresa solo
// figura en ownedCompanyIds (token emitido por otro servicio que honra el
// contrato), se sintetiza la entrada de dueño con autoridad irrestricta.
func (c *Claims) GrantFor(companyID string) (*CompanyGrant, bool) {
	for i := range c.CompanyGrants {
		if c.CompanyGrants[i].CompanyID == companyID {
			return &c.CompanyGrants[i], true
		}
	}
	for _, id := range c.OwnedCompanyIDs {
		if id == companyID {
			return &CompanyGrant{
				CompanyID:   companyID,
				Role:        "OWNER",
				Status:      "active",
				Permissions: []string{"*"},
			}, true
		}
	}
	return nil, false
}
