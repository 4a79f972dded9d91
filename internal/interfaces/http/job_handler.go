package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/quote"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
)

// JobHandler maneja trabajos, líneas de cotización, asignaciones y el PDF
// (protegido). La visibilidad y la redacción de precios se resuelven en los
// casos de uso; aquí solo se traduce HTTP.
type JobHandler struct {
	uc        *usecase.JobUseCase
	pdfUC     *quote.PDFUseCase
	accessSvc *usecase.AccessService
}

// NewJobHandler construye el handler.
func NewJobHandler(uc *usecase.JobUseCase, pdfUC *quote.PDFUseCase, accessSvc *usecase.AccessService) *JobHandler {
	return &JobHandler{uc: uc, pdfUC: pdfUC, accessSvc: accessSvc}
}

// Create da de alta un trabajo en DRAFT.
// POST /api/jobs
func (h *JobHandler) Create(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Title == "" || in.CustomerName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y customer_name son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista los trabajos visibles con el agregado por estado.
// GET /api/jobs
func (h *JobHandler) List(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Detail detalle del trabajo con líneas redactadas y permiso efectivo.
// GET /api/jobs/:id
func (h *JobHandler) Detail(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Detail(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza los datos del trabajo.
// PUT /api/jobs/:id
func (h *JobHandler) Update(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), actor, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus cambia el estado del trabajo.
// PUT /api/jobs/:id/status
func (h *JobHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateJobStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(c.Context(), actor, c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem agrega una línea de cotización.
// POST /api/jobs/:id/items
func (h *JobHandler) AddItem(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateJobItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddItem(c.Context(), actor, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem modifica una línea de cotización.
// PUT /api/jobs/:id/items/:itemId
func (h *JobHandler) UpdateItem(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateJobItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateItem(c.Context(), actor, c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteItem elimina una línea de cotización.
// DELETE /api/jobs/:id/items/:itemId
func (h *JobHandler) DeleteItem(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteItem(c.Context(), actor, c.Params("id"), c.Params("itemId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Share comparte el trabajo con un miembro con permiso local.
// POST /api/jobs/:id/assignments
func (h *JobHandler) Share(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ShareJobRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id es requerido"})
	}
	out, err := h.uc.Share(c.Context(), actor, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAssignments lista con quién está compartido el trabajo.
// GET /api/jobs/:id/assignments
func (h *JobHandler) ListAssignments(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListAssignments(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// QuotePDF descarga la cotización del trabajo en PDF.
// GET /api/jobs/:id/quote.pdf
func (h *JobHandler) QuotePDF(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.accessSvc)
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, filename, err := h.pdfUC.DownloadQuotePDF(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
