package repository

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// TradeRepository puerto de consulta del catálogo global de oficios y sus
// especialidades (solo lectura desde la API; lo escribe cmd/seed).
type TradeRepository interface {
	ListTrades(ctx context.Context) ([]*entity.Trade, error)
	GetTradeByID(ctx context.Context, id string) (*entity.Trade, error)
	ListSpecialtiesByTrade(ctx context.Context, tradeID string) ([]*entity.Specialty, error)
	GetSpecialtyByID(ctx context.Context, id string) (*entity.Specialty, error)
}
