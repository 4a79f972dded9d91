package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/pricing"
)

// EstimateUseCase calculadora de estimación rápida. No persiste nada: es el
// motor de precios puro expuesto como operación, con la redacción de montos
// aplicada igual que en el resto de la API.
type EstimateUseCase struct{}

// NewEstimateUseCase construye la calculadora.
func NewEstimateUseCase() *EstimateUseCase {
	return &EstimateUseCase{}
}

// Estimate calcula precio unitario, total y rango (mejor/peor combinación de
// material y complejidad) a partir de un precio base. Material y complejidad
// desconocidos caen al multiplicador neutro.
func (uc *EstimateUseCase) Estimate(ctx context.Context, actor access.Actor, in dto.EstimateRequest) (*dto.EstimateResponse, error) {
	base, err := parseMoney(in.BasePrice)
	if err != nil {
		return nil, err
	}
	qty := decimal.NewFromInt(1)
	if in.Quantity != "" {
		qty, err = parseQuantity(in.Quantity)
		if err != nil {
			return nil, err
		}
	}

	unit := pricing.UnitPrice(base, in.Material, in.Complexity)
	total := pricing.Total(unit, qty)
	low, high := pricing.Range(base)

	visible := actor.Ceiling.CanViewPrices
	return &dto.EstimateResponse{
		UnitPrice: moneyPtr(unit, visible),
		Total:     moneyPtr(total, visible),
		RangeLow:  moneyPtr(low, visible),
		RangeHigh: moneyPtr(high, visible),
	}, nil
}
