package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/pricing"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// JobUseCase trabajos y sus líneas de cotización. Toda lectura pasa por el
// filtro de visibilidad del núcleo access y toda línea con precio por la
// redacción según el permiso efectivo del espectador.
type JobUseCase struct {
	jobs        repository.JobRepository
	items       repository.JobItemRepository
	assignments repository.JobAssignmentRepository
	services    repository.ServiceRepository
	memberships repository.MembershipRepository
	companies   repository.CompanyRepository
	audits      repository.AuditRepository
	accessSvc   *AccessService
}

// NewJobUseCase construye el caso de uso con sus puertos.
func NewJobUseCase(
	jobs repository.JobRepository,
	items repository.JobItemRepository,
	assignments repository.JobAssignmentRepository,
	services repository.ServiceRepository,
	memberships repository.MembershipRepository,
	companies repository.CompanyRepository,
	audits repository.AuditRepository,
	accessSvc *AccessService,
) *JobUseCase {
	return &JobUseCase{
		jobs:        jobs,
		items:       items,
		assignments: assignments,
		services:    services,
		memberships: memberships,
		companies:   companies,
		audits:      audits,
		accessSvc:   accessSvc,
	}
}

// Create da de alta un trabajo en estado DRAFT. La especialidad, si viene,
// debe estar en el conjunto visible del actor.
func (uc *JobUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateJobRequest) (*dto.JobResponse, error) {
	if actor.Role == entity.RoleSupport {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companies.GetByID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.SpecialtyID != nil {
		allowed, err := uc.accessSvc.AllowedSpecialtyIDs(ctx, actor)
		if err != nil {
			return nil, err
		}
		if !toBoolSet(allowed)[*in.SpecialtyID] {
			return nil, domain.ErrForbidden
		}
	}
	now := time.Now()
	job := &entity.Job{
		ID:              uuid.New().String(),
		CompanyID:       actor.CompanyID,
		TradeID:         company.TradeID,
		SpecialtyID:     in.SpecialtyID,
		Title:           in.Title,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		Notes:           in.Notes,
		Status:          entity.JobStatusDraft,
		CreatedBy:       actor.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// List devuelve los trabajos visibles del actor y el agregado por estado.
// El agregado se recalcula sobre el conjunto ya filtrado, nunca sobre el
// total de la empresa.
func (uc *JobUseCase) List(ctx context.Context, actor access.Actor) (*dto.JobListResponse, error) {
	jobs, err := uc.jobs.ListByCompany(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	assigned, err := uc.assignments.ListAssignedJobIDs(ctx, actor.UserID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	allowed, err := uc.accessSvc.AllowedSpecialtyIDs(ctx, actor)
	if err != nil {
		return nil, err
	}
	visible := access.VisibleJobs(actor.Role, jobs, assigned, allowed)
	out := &dto.JobListResponse{
		Items: make([]dto.JobResponse, 0, len(visible)),
		Stats: access.CountByStatus(visible),
	}
	for _, j := range visible {
		out.Items = append(out.Items, *toJobResponse(j))
	}
	return out, nil
}

// Detail devuelve el trabajo con sus líneas. Un trabajo no visible responde
// como no encontrado. Las líneas se redactan según el permiso efectivo
// (permiso local de la asignación AND techo de la empresa).
func (uc *JobUseCase) Detail(ctx context.Context, actor access.Actor, jobID string) (*dto.JobDetailResponse, error) {
	job, assignment, err := uc.visibleJob(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	effective := uc.effectivePermissions(actor, assignment)

	items, err := uc.items.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	canView := effective.CanViewPrices
	redacted := access.RedactJobItems(items, canView)

	detail := &dto.JobDetailResponse{
		JobResponse:     *toJobResponse(job),
		CustomerPhone:   job.CustomerPhone,
		CustomerAddress: job.CustomerAddress,
		Notes:           job.Notes,
		Items:           make([]dto.JobItemResponse, 0, len(redacted)),
		Permissions:     effective,
	}
	total := decimal.Zero
	for _, it := range redacted {
		detail.Items = append(detail.Items, toJobItemResponse(it, canView))
		total = total.Add(it.LineTotal)
	}
	detail.Total = moneyPtr(total, canView)
	return detail, nil
}

// Update modifica datos del trabajo (no el estado ni las líneas).
func (uc *JobUseCase) Update(ctx context.Context, actor access.Actor, jobID string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, _, err := uc.visibleJob(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	if in.SpecialtyID != nil {
		allowed, err := uc.accessSvc.AllowedSpecialtyIDs(ctx, actor)
		if err != nil {
			return nil, err
		}
		if !toBoolSet(allowed)[*in.SpecialtyID] {
			return nil, domain.ErrForbidden
		}
		job.SpecialtyID = in.SpecialtyID
	}
	if in.Title != "" {
		job.Title = in.Title
	}
	if in.CustomerName != "" {
		job.CustomerName = in.CustomerName
	}
	if in.CustomerPhone != nil {
		job.CustomerPhone = *in.CustomerPhone
	}
	if in.CustomerAddress != nil {
		job.CustomerAddress = *in.CustomerAddress
	}
	if in.Notes != nil {
		job.Notes = *in.Notes
	}
	job.UpdatedAt = time.Now()
	if err := uc.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// UpdateStatus cambia el estado del trabajo a uno del conjunto cerrado.
func (uc *JobUseCase) UpdateStatus(ctx context.Context, actor access.Actor, jobID, status string) (*dto.JobResponse, error) {
	if !entity.ValidJobStatus(status) {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, status)
	}
	job, _, err := uc.visibleJob(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	job.Status = status
	job.UpdatedAt = time.Now()
	if err := uc.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// AddItem agrega una línea de cotización. Exige canEditPrices efectivo. Si
// la línea referencia un servicio del catálogo y no trae precio, se toma el
// precio del servicio; la descripción por defecto es el nombre del servicio.
func (uc *JobUseCase) AddItem(ctx context.Context, actor access.Actor, jobID string, in dto.CreateJobItemRequest) (*dto.JobItemResponse, error) {
	job, assignment, err := uc.visibleJob(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	effective := uc.effectivePermissions(actor, assignment)
	if !effective.CanEditPrices {
		return nil, domain.ErrForbidden
	}

	qty, err := parseQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	description := in.Description
	var unitPrice decimal.Decimal
	switch {
	case in.UnitPrice != nil:
		unitPrice, err = parseMoney(*in.UnitPrice)
		if err != nil {
			return nil, err
		}
	case in.ServiceID != nil:
		svc, err := uc.services.GetByID(ctx, *in.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc == nil || svc.CompanyID != job.CompanyID {
			return nil, domain.ErrNotFound
		}
		unitPrice = svc.UnitPrice
		if description == "" {
			description = svc.Name
		}
	default:
		return nil, fmt.Errorf("%w: la línea necesita unit_price o service_id", domain.ErrInvalidInput)
	}

	now := time.Now()
	item := &entity.JobItem{
		ID:          uuid.New().String(),
		JobID:       job.ID,
		ServiceID:   in.ServiceID,
		Description: description,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		LineTotal:   pricing.Total(unitPrice, qty),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	resp := toJobItemResponse(item, effective.CanViewPrices)
	return &resp, nil
}

// UpdateItem modifica una línea; recalcula LineTotal. Exige canEditPrices.
func (uc *JobUseCase) UpdateItem(ctx context.Context, actor access.Actor, jobID, itemID string, in dto.UpdateJobItemRequest) (*dto.JobItemResponse, error) {
	job, assignment, err := uc.visibleJob(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	effective := uc.effectivePermissions(actor, assignment)
	if !effective.CanEditPrices {
		return nil, domain.ErrForbidden
	}
	item, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.JobID != job.ID {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Quantity != nil {
		qty, err := parseQuantity(*in.Quantity)
		if err != nil {
			return nil, err
		}
		item.Quantity = qty
	}
	if in.UnitPrice != nil {
		price, err := parseMoney(*in.UnitPrice)
		if err != nil {
			return nil, err
		}
		item.UnitPrice = price
	}
	item.LineTotal = pricing.Total(item.UnitPrice, item.Quantity)
	item.UpdatedAt = time.Now()
	if err := uc.items.Update(ctx, item); err != nil {
		return nil, err
	}
	resp := toJobItemResponse(item, effective.CanViewPrices)
	return &resp, nil
}

// DeleteItem elimina una línea. Exige canEditPrices efectivo.
func (uc *JobUseCase) DeleteItem(ctx context.Context, actor access.Actor, jobID, itemID string) error {
	job, assignment, err := uc.visibleJob(ctx, actor, jobID)
	if err != nil {
		return err
	}
	effective := uc.effectivePermissions(actor, assignment)
	if !effective.CanEditPrices {
		return domain.ErrForbidden
	}
	item, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil || item.JobID != job.ID {
		return domain.ErrNotFound
	}
	return uc.items.Delete(ctx, item.ID)
}

// Share comparte el trabajo con un miembro activo de la empresa, con un
// permiso local. El permiso se guarda tal cual se otorgó; el techo se aplica
// en cada lectura, así endurecer el techo endurece lo ya compartido.
func (uc *JobUseCase) Share(ctx context.Context, actor access.Actor, jobID string, in dto.ShareJobRequest) (*dto.JobAssignmentResponse, error) {
	if !actor.CanManageMembers() {
		return nil, domain.ErrForbidden
	}
	job, _, err := uc.visibleJob(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	target, err := uc.memberships.GetByUserAndCompany(ctx, in.UserID, job.CompanyID)
	if err != nil {
		return nil, err
	}
	if target == nil || !target.Active {
		return nil, domain.ErrNotFound
	}
	if target.Role == entity.RoleSupport {
		// SUPPORT no ve trabajos bajo ninguna condición; compartirle uno
		// sería una asignación muerta.
		return nil, domain.ErrInvalidInput
	}
	perms := entity.DefaultEmployeePermissions
	if in.Permissions != nil {
		perms = access.Merge(perms, *in.Permissions)
	}
	now := time.Now()
	assignment := &entity.JobAssignment{
		ID:          uuid.New().String(),
		JobID:       job.ID,
		UserID:      in.UserID,
		Permissions: perms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.assignments.Upsert(ctx, assignment); err != nil {
		return nil, err
	}
	if err := uc.audits.Create(ctx, &entity.AuditLog{
		ID:        uuid.New().String(),
		CompanyID: actor.CompanyID,
		ActorID:   actor.UserID,
		Entity:    "job",
		EntityID:  job.ID,
		Action:    entity.AuditActionJobShared,
		Details:   fmt.Sprintf("user=%s permissions=%+v", in.UserID, perms),
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}
	return &dto.JobAssignmentResponse{
		JobID:       job.ID,
		UserID:      in.UserID,
		Permissions: perms,
		Effective:   access.Cap(perms, target.Permissions),
		CreatedAt:   now,
	}, nil
}

// ListAssignments lista con quién está compartido el trabajo, con el permiso
// efectivo ya calculado contra el techo de cada miembro.
func (uc *JobUseCase) ListAssignments(ctx context.Context, actor access.Actor, jobID string) ([]dto.JobAssignmentResponse, error) {
	if !actor.CanManageMembers() {
		return nil, domain.ErrForbidden
	}
	job, _, err := uc.visibleJob(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	assignments, err := uc.assignments.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.JobAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		ceiling := entity.PermissionSet{} // miembro ausente: efectivo todo false
		if m, err := uc.memberships.GetByUserAndCompany(ctx, a.UserID, job.CompanyID); err != nil {
			return nil, err
		} else if m != nil {
			ceiling = m.Permissions
		}
		out = append(out, dto.JobAssignmentResponse{
			JobID:       a.JobID,
			UserID:      a.UserID,
			Permissions: a.Permissions,
			Effective:   access.Cap(a.Permissions, ceiling),
			CreatedAt:   a.CreatedAt,
		})
	}
	return out, nil
}

// visibleJob carga el trabajo y su asignación directa (si existe) y aplica
// las reglas de visibilidad. Trabajo de otra empresa o fuera del conjunto
// visible → domain.ErrNotFound, sin revelar existencia.
func (uc *JobUseCase) visibleJob(ctx context.Context, actor access.Actor, jobID string) (*entity.Job, *entity.JobAssignment, error) {
	job, err := uc.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	if job == nil || job.CompanyID != actor.CompanyID {
		return nil, nil, domain.ErrNotFound
	}
	assignment, err := uc.assignments.Get(ctx, job.ID, actor.UserID)
	if err != nil {
		return nil, nil, err
	}
	allowed, err := uc.accessSvc.AllowedSpecialtyIDs(ctx, actor)
	if err != nil {
		return nil, nil, err
	}
	if !access.CanSeeJob(actor.Role, job, assignment != nil, allowed) {
		return nil, nil, domain.ErrNotFound
	}
	return job, assignment, nil
}

// effectivePermissions calcula el permiso efectivo del actor sobre el
// trabajo: con asignación directa es Cap(local, techo); sin ella (OWNER,
// ADMIN o USER que ve por especialidad) aplica el techo de la membresía.
func (uc *JobUseCase) effectivePermissions(actor access.Actor, assignment *entity.JobAssignment) entity.PermissionSet {
	if assignment == nil || actor.Role.CanManageCompany() {
		return actor.Ceiling
	}
	return access.Cap(assignment.Permissions, actor.Ceiling)
}

func toJobResponse(j *entity.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:           j.ID,
		CompanyID:    j.CompanyID,
		TradeID:      j.TradeID,
		SpecialtyID:  j.SpecialtyID,
		Title:        j.Title,
		CustomerName: j.CustomerName,
		Status:       j.Status,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

func toJobItemResponse(it *entity.JobItem, priceVisible bool) dto.JobItemResponse {
	return dto.JobItemResponse{
		ID:          it.ID,
		JobID:       it.JobID,
		ServiceID:   it.ServiceID,
		Description: it.Description,
		Quantity:    it.Quantity.String(),
		UnitPrice:   moneyPtr(it.UnitPrice, priceVisible),
		LineTotal:   moneyPtr(it.LineTotal, priceVisible),
	}
}

// toBoolSet convierte ids a set.
func toBoolSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
