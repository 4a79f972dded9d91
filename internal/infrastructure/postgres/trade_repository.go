package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.TradeRepository = (*TradeRepo)(nil)

// TradeRepo lectura del catálogo global de oficios y especialidades. El
// catálogo se administra por seed, por eso no hay escrituras aquí.
type TradeRepo struct {
	q Querier
}

// NewTradeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTradeRepository(q Querier) *TradeRepo {
	return &TradeRepo{q: q}
}

// ListTrades lista todos los oficios ordenados por nombre.
func (r *TradeRepo) ListTrades(ctx context.Context) ([]*entity.Trade, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, slug, created_at FROM trades ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	defer rows.Close()

	var list []*entity.Trade
	for rows.Next() {
		var t entity.Trade
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// GetTradeByID obtiene un oficio por ID.
func (r *TradeRepo) GetTradeByID(ctx context.Context, id string) (*entity.Trade, error) {
	var t entity.Trade
	err := r.q.QueryRow(ctx,
		`SELECT id, name, slug, created_at FROM trades WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trade: %w", err)
	}
	return &t, nil
}

// ListSpecialtiesByTrade lista las especialidades de un oficio.
func (r *TradeRepo) ListSpecialtiesByTrade(ctx context.Context, tradeID string) ([]*entity.Specialty, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, trade_id, name, slug, created_at FROM specialties
		WHERE trade_id = $1 ORDER BY name ASC`, tradeID)
	if err != nil {
		return nil, fmt.Errorf("list specialties: %w", err)
	}
	defer rows.Close()

	var list []*entity.Specialty
	for rows.Next() {
		var s entity.Specialty
		if err := rows.Scan(&s.ID, &s.TradeID, &s.Name, &s.Slug, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan specialty: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetSpecialtyByID obtiene una especialidad por ID.
func (r *TradeRepo) GetSpecialtyByID(ctx context.Context, id string) (*entity.Specialty, error) {
	var s entity.Specialty
	err := r.q.QueryRow(ctx,
		`SELECT id, trade_id, name, slug, created_at FROM specialties WHERE id = $1`, id,
	).Scan(&s.ID, &s.TradeID, &s.Name, &s.Slug, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get specialty: %w", err)
	}
	return &s, nil
}
