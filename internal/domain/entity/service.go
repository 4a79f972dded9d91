package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service es una entrada del catálogo de servicios de una empresa, siempre
// atada a una especialidad. Solo es visible para un usuario cuya resolución
// de especialidades incluya SpecialtyID.
type Service struct {
	ID          string
	CompanyID   string
	SpecialtyID string
	Name        string
	Description string
	Unit        string // unidad de cobro: m2, ml, hora, unidad
	UnitPrice   decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
