package auth

import (
	"fmt"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/access"
	pkgjwt "github.com/jhoicas/gestion-api/pkg/jwt"
)

// Authorize verifica una credencial presentada y aplica la cadena de chequeos
// en orden, cortando en el primer fallo:
//
//  1. firma y expiración        → ErrUnauthorized
//  2. alcance de empresa        → ErrForbidden (empresa fuera de la credencial)
//  3. permiso requerido         → ErrForbidden (permiso ausente, salvo wildcard)
//
// companyID y permission vacíos omiten sus chequeos. El snapshot del token es
// autoritativo durante su vigencia: nunca se vuelve a consultar el agregador
// ni la DB. Devuelve los claims y, si se pidió empresa, su grant resuelto.
func Authorize(secret, token, companyID, permission string) (*pkgjwt.Claims, *pkgjwt.CompanyGrant, error) {
	claims, err := pkgjwt.Parse(secret, token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	var grant *pkgjwt.CompanyGrant
	if companyID != "" {
		g, ok := claims.GrantFor(companyID)
		if !ok {
			return nil, nil, fmt.Errorf("%w: la empresa no está en el alcance de la credencial", domain.ErrForbidden)
		}
		grant = g
	}

	if permission != "" {
		if grant == nil {
			return nil, nil, fmt.Errorf("%w: se requiere contexto de empresa para verificar permisos", domain.ErrForbidden)
		}
		if !access.Grants(grant.Permissions, permission) {
			return nil, nil, fmt.Errorf("%w: falta el permiso %s", domain.ErrForbidden, permission)
		}
	}

	return claims, grant, nil
}
