package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain"
)

// parseMoney convierte un string decimal del request ("120.00") a decimal.
// Montos negativos se rechazan.
func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: monto inválido %q", domain.ErrInvalidInput, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: el monto no puede ser negativo", domain.ErrInvalidInput)
	}
	return d, nil
}

// parseQuantity convierte la cantidad del request; debe ser positiva.
func parseQuantity(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: cantidad inválida %q", domain.ErrInvalidInput, s)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return d, nil
}

// moneyPtr serializa un monto a string fijo de 2 decimales, o null si el
// espectador no puede ver precios.
func moneyPtr(d decimal.Decimal, visible bool) *string {
	if !visible {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
