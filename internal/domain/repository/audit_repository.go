package repository

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// AuditRepository puerto de persistencia del journal de auditoría.
type AuditRepository interface {
	Create(ctx context.Context, a *entity.AuditLog) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.AuditLog, error)
}
