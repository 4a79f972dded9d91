package entity

import "time"

// Membership asocia un User a una Company con un rol de empresa y el
// conjunto de permisos que actúa como techo de la empresa: ningún permiso
// otorgado a nivel de trabajo puede superar lo que diga esta fila.
type Membership struct {
	ID          string
	UserID      string
	CompanyID   string
	Role        Role
	Active      bool
	Permissions PermissionSet // techo de la empresa
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SpecialtyAssignment asocia un User a una Specialty dentro de una Company.
// Es la lista de "especialidades nombradas" a las que se restringe un rol
// USER; es independiente de los flags de permisos.
type SpecialtyAssignment struct {
	ID          string
	UserID      string
	CompanyID   string
	SpecialtyID string
	CreatedAt   time.Time
}
