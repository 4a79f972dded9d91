package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones de la empresa del token (protegido).
type CompanyHandler struct {
	uc        *usecase.CompanyUseCase
	accessSvc *usecase.AccessService
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase, accessSvc *usecase.AccessService) *CompanyHandler {
	return &CompanyHandler{uc: uc, accessSvc: accessSvc}
}

// Me devuelve la empresa de la membresía activa.
// GET /api/company
func (h *CompanyHandler) Me(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Me(c.Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza los datos de contacto de la empresa (solo OWNER/ADMIN).
// PUT /api/company
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
