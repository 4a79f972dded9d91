package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
)

// CatalogHandler expone el catálogo global de oficios y especialidades.
type CatalogHandler struct {
	uc        *usecase.CatalogUseCase
	accessSvc *usecase.AccessService
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, accessSvc *usecase.AccessService) *CatalogHandler {
	return &CatalogHandler{uc: uc, accessSvc: accessSvc}
}

// ListTrades lista los oficios disponibles (público: se usa en el registro).
// GET /api/trades
func (h *CatalogHandler) ListTrades(c *fiber.Ctx) error {
	out, err := h.uc.ListTrades(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListSpecialties lista las especialidades de un oficio (público).
// GET /api/trades/:id/specialties
func (h *CatalogHandler) ListSpecialties(c *fiber.Ctx) error {
	out, err := h.uc.ListSpecialties(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MySpecialties devuelve las especialidades visibles del actor y si necesita
// onboarding (conjunto asignado vacío).
// GET /api/me/specialties
func (h *CatalogHandler) MySpecialties(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.MySpecialties(c.Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
