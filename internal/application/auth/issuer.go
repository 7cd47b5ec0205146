package auth

import (
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain/access"
	pkgjwt "github.com/jhoicas/gestion-api/pkg/jwt"
)

// Issue construye y firma el claim set de un principal resuelto. El snapshot
// de permisos de cada membresía se calcula aquí, una vez por emisión; la
// credencial resultante es inmutable y un cambio de permisos solo se observa
// en la próxima emisión. No persiste nada.
func (uc *UseCase) Issue(p access.Principal) (string, dto.CredentialSummary, error) {
	payload := pkgjwt.Payload{
		Subject:         p.ID,
		Email:           p.Email,
		GlobalRole:      p.GlobalRole,
		OwnedCompanyIDs: p.OwnedCompanyIDs(),
	}
	for _, m := range p.Memberships {
		payload.CompanyGrants = append(payload.CompanyGrants, pkgjwt.CompanyGrant{
			CompanyID:   m.CompanyID,
			Role:        m.Role,
			Status:      m.Status,
			Permissions: m.EffectivePermissions(),
		})
	}

	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, payload)
	if err != nil {
		return "", dto.CredentialSummary{}, err
	}

	summary := dto.CredentialSummary{
		Subject:         payload.Subject,
		Email:           payload.Email,
		GlobalRole:      payload.GlobalRole,
		OwnedCompanyIDs: payload.OwnedCompanyIDs,
	}
	for _, g := range payload.CompanyGrants {
		summary.CompanyGrants = append(summary.CompanyGrants, dto.CompanyGrantView(g))
	}
	return token, summary, nil
}
