package dto

import "time"

// AuditEntryResponse una fila del journal de auditoría.
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditListResponse listado paginado del journal.
type AuditListResponse struct {
	Items []AuditEntryResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
