package entity

import "time"

// Acciones registradas en el journal de auditoría.
const (
	AuditActionPermissionsUpdated = "permissions_updated"
	AuditActionSpecialtiesUpdated = "specialties_updated"
	AuditActionRoleUpdated        = "role_updated"
	AuditActionMemberDeactivated  = "member_deactivated"
	AuditActionMemberInvited      = "member_invited"
	AuditActionJobShared          = "job_shared"
)

// AuditLog registro del journal de auditoría de una empresa. Se escribe en
// cada mutación de permisos/asignaciones y solo lo lee quien tenga el flag
// efectivo canAudit.
type AuditLog struct {
	ID        string
	CompanyID string
	ActorID   string // user id de quien ejecutó la acción
	Entity    string // "membership", "job", "invite"
	EntityID  string
	Action    string // ver constantes AuditAction*
	Details   string
	CreatedAt time.Time
}
