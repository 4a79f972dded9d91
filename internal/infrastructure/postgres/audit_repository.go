package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditRepository sobre PostgreSQL. El
// journal es de solo inserción; nunca se actualiza ni se borra.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create inserta una entrada del journal.
func (r *AuditRepo) Create(ctx context.Context, a *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, company_id, actor_id, entity, entity_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.CompanyID, a.ActorID, a.Entity, a.EntityID, a.Action, a.Details, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListByCompany lista el journal de la empresa, más reciente primero.
func (r *AuditRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, company_id, actor_id, entity, entity_id, action, details, created_at
		FROM audit_logs WHERE company_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditLog
	for rows.Next() {
		var a entity.AuditLog
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.ActorID, &a.Entity, &a.EntityID, &a.Action, &a.Details, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
