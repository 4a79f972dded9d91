package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// ServiceUseCase catálogo de servicios de la empresa. La visibilidad se
// acota al conjunto de especialidades resuelto del espectador y los precios
// se redactan cuando el techo no incluye canViewPrices.
type ServiceUseCase struct {
	services  repository.ServiceRepository
	accessSvc *AccessService
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(services repository.ServiceRepository, accessSvc *AccessService) *ServiceUseCase {
	return &ServiceUseCase{services: services, accessSvc: accessSvc}
}

// Create da de alta un servicio. Exige canEditPrices y que la especialidad
// esté en el conjunto visible del actor.
func (uc *ServiceUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if !actor.Ceiling.CanEditPrices {
		return nil, domain.ErrForbidden
	}
	allowed, err := uc.allowedSet(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !allowed[in.SpecialtyID] {
		return nil, domain.ErrForbidden
	}
	price, err := parseMoney(in.UnitPrice)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Service{
		ID:          uuid.New().String(),
		CompanyID:   actor.CompanyID,
		SpecialtyID: in.SpecialtyID,
		Name:        in.Name,
		Description: in.Description,
		Unit:        in.Unit,
		UnitPrice:   price,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.services.Create(ctx, s); err != nil {
		return nil, err
	}
	return uc.toResponse(s, actor.Ceiling.CanViewPrices), nil
}

// GetByID devuelve el servicio si es visible para el actor; un servicio de
// otra empresa o de una especialidad no permitida responde como no
// encontrado, nunca revela su existencia.
func (uc *ServiceUseCase) GetByID(ctx context.Context, actor access.Actor, id string) (*dto.ServiceResponse, error) {
	s, err := uc.visibleService(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(s, actor.Ceiling.CanViewPrices), nil
}

// List lista los servicios de las especialidades visibles del actor, con
// precios redactados si corresponde.
func (uc *ServiceUseCase) List(ctx context.Context, actor access.Actor, page dto.PageRequest) (*dto.ServiceListResponse, error) {
	page.DefaultPage()
	allowed, err := uc.accessSvc.AllowedSpecialtyIDs(ctx, actor)
	if err != nil {
		return nil, err
	}
	out := &dto.ServiceListResponse{
		Items: []dto.ServiceResponse{},
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	if len(allowed) == 0 {
		return out, nil
	}
	list, err := uc.services.ListByCompanyAndSpecialties(ctx, actor.CompanyID, allowed, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	canView := actor.Ceiling.CanViewPrices
	for _, s := range access.RedactServices(list, canView) {
		out.Items = append(out.Items, *uc.toResponse(s, canView))
	}
	return out, nil
}

// Update actualiza un servicio visible. Exige canEditPrices.
func (uc *ServiceUseCase) Update(ctx context.Context, actor access.Actor, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if !actor.Ceiling.CanEditPrices {
		return nil, domain.ErrForbidden
	}
	s, err := uc.visibleService(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		s.Name = in.Name
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.Unit != "" {
		s.Unit = in.Unit
	}
	if in.UnitPrice != nil {
		price, err := parseMoney(*in.UnitPrice)
		if err != nil {
			return nil, err
		}
		s.UnitPrice = price
	}
	if in.Active != nil {
		s.Active = *in.Active
	}
	s.UpdatedAt = time.Now()
	if err := uc.services.Update(ctx, s); err != nil {
		return nil, err
	}
	return uc.toResponse(s, actor.Ceiling.CanViewPrices), nil
}

// Delete elimina un servicio visible. Exige canEditPrices.
func (uc *ServiceUseCase) Delete(ctx context.Context, actor access.Actor, id string) error {
	if !actor.Ceiling.CanEditPrices {
		return domain.ErrForbidden
	}
	s, err := uc.visibleService(ctx, actor, id)
	if err != nil {
		return err
	}
	return uc.services.Delete(ctx, s.ID)
}

// visibleService carga el servicio y aplica las reglas de visibilidad.
func (uc *ServiceUseCase) visibleService(ctx context.Context, actor access.Actor, id string) (*entity.Service, error) {
	s, err := uc.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil || s.CompanyID != actor.CompanyID {
		return nil, domain.ErrNotFound
	}
	allowed, err := uc.allowedSet(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !allowed[s.SpecialtyID] {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (uc *ServiceUseCase) allowedSet(ctx context.Context, actor access.Actor) (map[string]bool, error) {
	allowed, err := uc.accessSvc.AllowedSpecialtyIDs(ctx, actor)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(allowed))
	for _, id := range allowed {
		set[id] = true
	}
	return set, nil
}

func (uc *ServiceUseCase) toResponse(s *entity.Service, priceVisible bool) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		SpecialtyID: s.SpecialtyID,
		Name:        s.Name,
		Description: s.Description,
		Unit:        s.Unit,
		UnitPrice:   moneyPtr(s.UnitPrice, priceVisible),
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
