package usecase

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// CatalogUseCase consulta del catálogo global de oficios/especialidades y
// resolución de las especialidades visibles del usuario de la sesión.
type CatalogUseCase struct {
	trades    repository.TradeRepository
	companies repository.CompanyRepository
	accessSvc *AccessService
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(trades repository.TradeRepository, companies repository.CompanyRepository, accessSvc *AccessService) *CatalogUseCase {
	return &CatalogUseCase{trades: trades, companies: companies, accessSvc: accessSvc}
}

// ListTrades lista el catálogo global de oficios.
func (uc *CatalogUseCase) ListTrades(ctx context.Context) ([]dto.TradeResponse, error) {
	trades, err := uc.trades.ListTrades(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TradeResponse, 0, len(trades))
	for _, t := range trades {
		out = append(out, dto.TradeResponse{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	return out, nil
}

// ListSpecialties lista las especialidades de un oficio.
func (uc *CatalogUseCase) ListSpecialties(ctx context.Context, tradeID string) ([]dto.SpecialtyResponse, error) {
	specialties, err := uc.trades.ListSpecialtiesByTrade(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	return toSpecialtyResponses(specialties), nil
}

// MySpecialties resuelve las especialidades visibles del actor y el estado
// needs_onboarding (conjunto vacío → el front redirige a selección).
func (uc *CatalogUseCase) MySpecialties(ctx context.Context, actor access.Actor) (*dto.MySpecialtiesResponse, error) {
	allowed, err := uc.accessSvc.AllowedSpecialtyIDs(ctx, actor)
	if err != nil {
		return nil, err
	}
	out := &dto.MySpecialtiesResponse{
		Specialties:     []dto.SpecialtyResponse{},
		NeedsOnboarding: access.NeedsOnboarding(allowed),
	}
	if len(allowed) == 0 {
		return out, nil
	}
	// Enriquecer los ids con nombre/slug para el front.
	allowedSet := make(map[string]bool, len(allowed))
	for _, id := range allowed {
		allowedSet[id] = true
	}
	company, err := uc.companies.GetByID(ctx, actor.CompanyID)
	if err != nil || company == nil {
		return out, err
	}
	specialties, err := uc.trades.ListSpecialtiesByTrade(ctx, company.TradeID)
	if err != nil {
		return nil, err
	}
	for _, s := range specialties {
		if allowedSet[s.ID] {
			out.Specialties = append(out.Specialties, dto.SpecialtyResponse{
				ID: s.ID, TradeID: s.TradeID, Name: s.Name, Slug: s.Slug,
			})
		}
	}
	return out, nil
}

func toSpecialtyResponses(specialties []*entity.Specialty) []dto.SpecialtyResponse {
	out := make([]dto.SpecialtyResponse, 0, len(specialties))
	for _, s := range specialties {
		out = append(out, dto.SpecialtyResponse{ID: s.ID, TradeID: s.TradeID, Name: s.Name, Slug: s.Slug})
	}
	return out
}
