package access

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// Tipos de principal.
const (
	KindUser     = "user"
	KindEmployee = "employee"
)

// Principal es la identidad autenticada, normalizada desde sus dos formas
// concretas (cuenta de plataforma o empleado de empresa). Unión etiquetada:
// Kind indica la variante; la superficie de identidad es común.
type Principal struct {
	Kind        string
	ID          string
	Email       string
	Name        string
	GlobalRole  string // solo variante user; la vista de empleado no reporta rol global
	Memberships []Membership
}

// Membership es la relación del principal con una empresa: propiedad
// (rol OWNER, autoridad irrestricta) o empleo (rol acotado, ampliable con
// grants directos y custom role).
type Membership struct {
	CompanyID  string
	Role       string
	Status     string
	Grants     []string
	CustomRole *entity.CustomRole
	Owned      bool
}

// OwnedCompanyIDs devuelve los ids de las empresas de las que el principal
// es dueño, en el orden de sus membresías.
func (p Principal) OwnedCompanyIDs() []string {
	var ids []string
	for _, m := range p.Memberships {
		if m.Owned {
			ids = append(ids, m.CompanyID)
		}
	}
	return ids
}

// EffectivePermissions calcula el snapshot de permisos de una membresía.
// Las propiedades resuelven al wildcard sin consultar la tabla de roles.
func (m Membership) EffectivePermissions() []string {
	if m.Owned {
		return []string{Wildcard}
	}
	return Aggregate(m.Role, m.Grants, m.CustomRole)
}

// PrincipalFromUser normaliza una cuenta de plataforma: una membresía de
// propiedad por cada empresa propia y una de empleo por cada perfil de
// empleado asociado al mismo email.
func PrincipalFromUser(u *entity.User) Principal {
	p := Principal{
		Kind:       KindUser,
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		GlobalRole: u.GlobalRole,
	}
	for _, o := range u.Ownerships {
		p.Memberships = append(p.Memberships, Membership{
			CompanyID: o.CompanyID,
			Role:      entity.RoleOwner,
			Status:    entity.StatusActive,
			Owned:     true,
		})
	}
	for i := range u.Employments {
		p.Memberships = append(p.Memberships, membershipFromEmployee(&u.Employments[i]))
	}
	return p
}

// PrincipalFromEmployee normaliza un empleado autenticado por contraseña
// temporal: una única membresía sintética, sin propiedades ni rol global.
func PrincipalFromEmployee(e *entity.Employee) Principal {
	return Principal{
		Kind:        KindEmployee,
		ID:          e.ID,
		Email:       e.Email,
		Name:        e.Name,
		GlobalRole:  "",
		Memberships: []Membership{membershipFromEmployee(e)},
	}
}

func membershipFromEmployee(e *entity.Employee) Membership {
	return Membership{
		CompanyID:  e.CompanyID,
		Role:       e.Role,
		Status:     e.Status,
		Grants:     e.Permissions,
		CustomRole: e.CustomRole,
	}
}
