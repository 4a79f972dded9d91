package dto

import (
	"time"

	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// MemberResponse un miembro de la empresa con su techo de permisos y sus
// especialidades asignadas.
type MemberResponse struct {
	UserID      string               `json:"user_id"`
	Email       string               `json:"email"`
	Name        string               `json:"name"`
	Role        string               `json:"role"`
	Active      bool                 `json:"active"`
	Permissions entity.PermissionSet `json:"permissions"`
	Specialties []string             `json:"specialties"`
	CreatedAt   time.Time            `json:"created_at"`
}

// MemberListResponse listado paginado de miembros.
type MemberListResponse struct {
	Items []MemberResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// InviteMemberRequest invitación de un empleado. Si Permissions es nil se
// aplica la línea base de empleado por defecto.
type InviteMemberRequest struct {
	Email       string                  `json:"email" validate:"required,email"`
	Role        string                  `json:"role" validate:"required,oneof=ADMIN USER SUPPORT"`
	Permissions *access.PermissionPatch `json:"permissions"`
}

// InviteMemberResponse invitación creada (el token viaja por email en el
// producto; aquí se devuelve para el flujo de pruebas y el front).
type InviteMemberResponse struct {
	InviteID  string    `json:"invite_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UpdatePermissionsRequest patch parcial del techo de permisos del miembro.
type UpdatePermissionsRequest struct {
	Permissions access.PermissionPatch `json:"permissions"`
}

// UpdateRoleRequest cambio de rol de empresa del miembro.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=OWNER ADMIN USER SUPPORT"`
}

// UpdateSpecialtiesRequest reemplaza el conjunto de especialidades asignadas.
type UpdateSpecialtiesRequest struct {
	SpecialtyIDs []string `json:"specialty_ids" validate:"required"`
}
