package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
)

// AuditHandler expone el journal de auditoría (protegido, requiere canAudit
// o rol SUPPORT).
type AuditHandler struct {
	uc        *usecase.AuditUseCase
	accessSvc *usecase.AccessService
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditUseCase, accessSvc *usecase.AccessService) *AuditHandler {
	return &AuditHandler{uc: uc, accessSvc: accessSvc}
}

// List devuelve el journal de la empresa, más reciente primero.
// GET /api/audit
func (h *AuditHandler) List(c *fiber.Ctx) error {
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
