package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.InviteRepository = (*InviteRepo)(nil)

// InviteRepo implementación del puerto InviteRepository sobre PostgreSQL.
type InviteRepo struct {
	q Querier
}

// NewInviteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInviteRepository(q Querier) *InviteRepo {
	return &InviteRepo{q: q}
}

// Create persiste un token de invitación.
func (r *InviteRepo) Create(ctx context.Context, inv *entity.InviteToken) error {
	query := `
		INSERT INTO invite_tokens (
			id, company_id, email, role,
			can_manage_users, can_view_all_specialties, can_view_prices, can_edit_prices, can_audit,
			token, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.CompanyID, inv.Email, string(inv.Role),
		inv.Permissions.CanManageUsers, inv.Permissions.CanViewAllSpecialties,
		inv.Permissions.CanViewPrices, inv.Permissions.CanEditPrices, inv.Permissions.CanAudit,
		inv.Token, inv.ExpiresAt, inv.Used, inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invite: %w", err)
	}
	return nil
}

// GetByToken obtiene una invitación por su token opaco.
func (r *InviteRepo) GetByToken(ctx context.Context, token string) (*entity.InviteToken, error) {
	query := `
		SELECT id, company_id, email, role,
			can_manage_users, can_view_all_specialties, can_view_prices, can_edit_prices, can_audit,
			token, expires_at, used, created_at
		FROM invite_tokens WHERE token = $1`
	var inv entity.InviteToken
	var role string
	err := r.q.QueryRow(ctx, query, token).Scan(
		&inv.ID, &inv.CompanyID, &inv.Email, &role,
		&inv.Permissions.CanManageUsers, &inv.Permissions.CanViewAllSpecialties,
		&inv.Permissions.CanViewPrices, &inv.Permissions.CanEditPrices, &inv.Permissions.CanAudit,
		&inv.Token, &inv.ExpiresAt, &inv.Used, &inv.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invite: %w", err)
	}
	inv.Role = entity.Role(role)
	return &inv, nil
}

// MarkUsed marca la invitación como consumida.
func (r *InviteRepo) MarkUsed(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE invite_tokens SET used = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark invite used: %w", err)
	}
	return nil
}
