package entity

// Role es el rol de un usuario dentro de una empresa. Enumeración cerrada:
// los resolutores del paquete access hacen switch exhaustivo sobre estos
// valores y tratan cualquier otro como cero visibilidad.
type Role string

const (
	RoleOwner   Role = "OWNER"
	RoleAdmin   Role = "ADMIN"
	RoleUser    Role = "USER"
	RoleSupport Role = "SUPPORT"
)

// ParseRole convierte el string persistido a Role. ok=false para valores
// desconocidos; el llamador debe tratar ese caso como sin acceso.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner, RoleAdmin, RoleUser, RoleSupport:
		return Role(s), true
	default:
		return "", false
	}
}

// CanManageCompany informa si el rol tiene el bypass de administración de la
// empresa (OWNER y ADMIN gestionan miembros sin necesitar canManageUsers).
func (r Role) CanManageCompany() bool {
	return r == RoleOwner || r == RoleAdmin
}

// PermissionSet registro de forma fija con los cinco flags independientes de
// permiso. El zero value (todo false) es el conjunto más restrictivo, lo que
// hace seguro el default ante datos ausentes.
type PermissionSet struct {
	CanManageUsers        bool `json:"canManageUsers"`
	CanViewAllSpecialties bool `json:"canViewAllSpecialties"`
	CanViewPrices         bool `json:"canViewPrices"`
	CanEditPrices         bool `json:"canEditPrices"`
	CanAudit              bool `json:"canAudit"`
}

// DefaultEmployeePermissions línea base para un empleado recién agregado:
// puede ver precios y nada más. Es configuración del producto, no derivada.
var DefaultEmployeePermissions = PermissionSet{
	CanViewPrices: true,
}

// AllPermissions conjunto con los cinco flags activos (techo de OWNER).
var AllPermissions = PermissionSet{
	CanManageUsers:        true,
	CanViewAllSpecialties: true,
	CanViewPrices:         true,
	CanEditPrices:         true,
	CanAudit:              true,
}
