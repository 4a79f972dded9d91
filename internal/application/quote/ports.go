package quote

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// QuoteData todo lo que el generador necesita para renderizar la cotización.
// Items ya viene redactado: si PriceVisible es false los montos son cero y el
// generador oculta las columnas de precio.
type QuoteData struct {
	Company      *entity.Company
	Job          *entity.Job
	Items        []*entity.JobItem
	Total        decimal.Decimal
	PriceVisible bool
	Currency     string
	IssuedAt     time.Time
	ValidUntil   time.Time
}

// QuotePDFGenerator puerto de generación del PDF de cotización.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, data QuoteData) ([]byte, error)
}
