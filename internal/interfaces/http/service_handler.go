package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
)

// ServiceHandler maneja el catálogo de servicios con precio de la empresa
// (protegido). Los precios salen null para quien no tiene canViewPrices.
type ServiceHandler struct {
	uc        *usecase.ServiceUseCase
	accessSvc *usecase.AccessService
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase, accessSvc *usecase.AccessService) *ServiceHandler {
	return &ServiceHandler{uc: uc, accessSvc: accessSvc}
}

// Create da de alta un servicio (requiere canEditPrices).
// POST /api/services
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" || in.SpecialtyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y specialty_id son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista los servicios de las especialidades visibles del actor.
// GET /api/services
func (h *ServiceHandler) List(c *fiber.Ctx) error {
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

// GetByID obtiene un servicio visible por ID.
// GET /api/services/:id
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un servicio (requiere canEditPrices).
// PUT /api/services/:id
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), actor, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un servicio (requiere canEditPrices).
// DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
