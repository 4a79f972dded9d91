package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
)

// MemberHandler maneja la gestión de miembros de la empresa (protegido).
type MemberHandler struct {
	uc        *usecase.MemberUseCase
	accessSvc *usecase.AccessService
}

// NewMemberHandler construye el handler.
func NewMemberHandler(uc *usecase.MemberUseCase, accessSvc *usecase.AccessService) *MemberHandler {
	return &MemberHandler{uc: uc, accessSvc: accessSvc}
}

// List lista los miembros con su rol, techo de permisos y especialidades.
// GET /api/members
func (h *MemberHandler) List(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.Context(), actor, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Invite crea una invitación con rol y patch de permisos opcional.
// POST /api/members/invites
func (h *MemberHandler) Invite(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.InviteMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y role son requeridos"})
	}
	out, err := h.uc.Invite(c.Context(), actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePermissions aplica un patch parcial al techo de permisos del miembro.
// PUT /api/members/:userId/permissions
func (h *MemberHandler) UpdatePermissions(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePermissionsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdatePermissions(c.Context(), actor, c.Params("userId"), in.Permissions)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateSpecialties reemplaza las especialidades asignadas al miembro.
// PUT /api/members/:userId/specialties
func (h *MemberHandler) UpdateSpecialties(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateSpecialtiesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateSpecialties(c.Context(), actor, c.Params("userId"), in.SpecialtyIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateRole cambia el rol del miembro en la empresa.
// PUT /api/members/:userId/role
func (h *MemberHandler) UpdateRole(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateRole(c.Context(), actor, c.Params("userId"), in.Role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Deactivate desactiva la membresía del miembro (no el usuario global).
// DELETE /api/members/:userId
func (h *MemberHandler) Deactivate(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Deactivate(c.Context(), actor, c.Params("userId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
