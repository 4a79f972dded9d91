package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
)

// EstimateHandler expone la calculadora de estimación (protegido).
type EstimateHandler struct {
	uc        *usecase.EstimateUseCase
	accessSvc *usecase.AccessService
}

// NewEstimateHandler construye el handler.
func NewEstimateHandler(uc *usecase.EstimateUseCase, accessSvc *usecase.AccessService) *EstimateHandler {
	return &EstimateHandler{uc: uc, accessSvc: accessSvc}
}

// Estimate calcula precio unitario, total y rango a partir de un precio base.
// POST /api/estimates
func (h *EstimateHandler) Estimate(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.EstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.BasePrice == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "base_price es requerido"})
	}
	out, err := h.uc.Estimate(c.Context(), actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
