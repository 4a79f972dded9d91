package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// PDFUseCase genera el PDF de cotización de un trabajo. Aplica las mismas
// reglas de visibilidad que el detalle del trabajo: quien no puede ver el
// trabajo no descarga su cotización, y quien no puede ver precios recibe el
// documento sin montos.
type PDFUseCase struct {
	jobs        repository.JobRepository
	items       repository.JobItemRepository
	assignments repository.JobAssignmentRepository
	companies   repository.CompanyRepository
	generator   QuotePDFGenerator
	allowedFn   AllowedSpecialtiesFn
	currency    string
	validity    time.Duration
}

// AllowedSpecialtiesFn resuelve el conjunto de especialidades visibles del
// actor (lo provee el servicio de acceso de la capa de aplicación).
type AllowedSpecialtiesFn func(ctx context.Context, actor access.Actor) ([]string, error)

// NewPDFUseCase construye el caso de uso. validityDays define la vigencia de
// la cotización impresa en el documento.
func NewPDFUseCase(
	jobs repository.JobRepository,
	items repository.JobItemRepository,
	assignments repository.JobAssignmentRepository,
	companies repository.CompanyRepository,
	generator QuotePDFGenerator,
	allowedFn AllowedSpecialtiesFn,
	currency string,
	validityDays int,
) *PDFUseCase {
	return &PDFUseCase{
		jobs:        jobs,
		items:       items,
		assignments: assignments,
		companies:   companies,
		generator:   generator,
		allowedFn:   allowedFn,
		currency:    currency,
		validity:    time.Duration(validityDays) * 24 * time.Hour,
	}
}

// DownloadQuotePDF recupera trabajo, empresa y líneas, verifica visibilidad
// y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el trabajo no existe o el actor no lo ve.
func (uc *PDFUseCase) DownloadQuotePDF(
	ctx context.Context,
	actor access.Actor,
	jobID string,
) (pdfBytes []byte, filename string, err error) {
	job, err := uc.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener trabajo: %w", err)
	}
	if job == nil || job.CompanyID != actor.CompanyID {
		return nil, "", domain.ErrNotFound
	}

	assignment, err := uc.assignments.Get(ctx, job.ID, actor.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener asignación: %w", err)
	}
	allowed, err := uc.allowedFn(ctx, actor)
	if err != nil {
		return nil, "", err
	}
	if !access.CanSeeJob(actor.Role, job, assignment != nil, allowed) {
		return nil, "", domain.ErrNotFound
	}

	company, err := uc.companies.GetByID(ctx, job.CompanyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	effective := actor.Ceiling
	if assignment != nil && !actor.Role.CanManageCompany() {
		effective = access.Cap(assignment.Permissions, actor.Ceiling)
	}

	rawItems, err := uc.items.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	items := access.RedactJobItems(rawItems, effective.CanViewPrices)
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal)
	}

	now := time.Now()
	pdfBytes, err = uc.generator.GenerateQuotePDF(ctx, QuoteData{
		Company:      company,
		Job:          job,
		Items:        items,
		Total:        total,
		PriceVisible: effective.CanViewPrices,
		Currency:     uc.currency,
		IssuedAt:     now,
		ValidUntil:   now.Add(uc.validity),
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("cotizacion_%s.pdf", shortID(job.ID))
	return pdfBytes, filename, nil
}

// shortID recorta un UUID a su primer segmento para nombres de archivo.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
