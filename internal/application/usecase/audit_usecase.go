package usecase

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// AuditUseCase lectura del journal de auditoría. Requiere canAudit en el
// techo del actor o rol SUPPORT (soporte audita sin ver trabajos ni precios).
type AuditUseCase struct {
	audits repository.AuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(audits repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{audits: audits}
}

// List devuelve las entradas del journal de la empresa, más recientes primero.
func (uc *AuditUseCase) List(ctx context.Context, actor access.Actor, page dto.PageRequest) (*dto.AuditListResponse, error) {
	if !uc.canAudit(actor) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	entries, err := uc.audits.ListByCompany(ctx, actor.CompanyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.AuditListResponse{
		Items: make([]dto.AuditEntryResponse, 0, len(entries)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, e := range entries {
		out.Items = append(out.Items, dto.AuditEntryResponse{
			ID:        e.ID,
			ActorID:   e.ActorID,
			Entity:    e.Entity,
			EntityID:  e.EntityID,
			Action:    e.Action,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

func (uc *AuditUseCase) canAudit(actor access.Actor) bool {
	return actor.Role == entity.RoleSupport || actor.Ceiling.CanAudit
}
