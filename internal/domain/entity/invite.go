package entity

import "time"

// InviteToken invitación de una empresa a un empleado. Al aceptarla se crea
// la Membership con el rol y los permisos indicados aquí.
type InviteToken struct {
	ID          string
	CompanyID   string
	Email       string
	Role        Role
	Permissions PermissionSet
	Token       string
	ExpiresAt   time.Time
	Used        bool
	CreatedAt   time.Time
}

// Expired informa si la invitación ya no puede aceptarse.
func (i InviteToken) Expired(now time.Time) bool {
	return i.Used || now.After(i.ExpiresAt)
}
