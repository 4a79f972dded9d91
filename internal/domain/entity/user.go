package entity

import "time"

// Rol global del usuario. Es solo informativo: jamás otorga acceso entre
// empresas; el acceso real se decide con la membresía (ver Membership).
const (
	GlobalRoleUser         = "user"
	GlobalRoleSupportAdmin = "support_admin"
	GlobalRoleSuperAdmin   = "super_admin"
)

// User representa una identidad del sistema. Un usuario puede pertenecer a
// una o más empresas vía Membership; aquí no hay nada de permisos.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	GlobalRole   string // ver constantes GlobalRole*
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
