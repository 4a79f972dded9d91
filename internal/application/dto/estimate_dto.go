package dto

// EstimateRequest entrada de la calculadora de estimación (foto-estimado):
// precio base del servicio más nivel de material y complejidad.
type EstimateRequest struct {
	BasePrice  string `json:"base_price" validate:"required"`
	Material   string `json:"material" validate:"omitempty,oneof=basic standard premium"`
	Complexity string `json:"complexity" validate:"omitempty,oneof=normal hard"`
	Quantity   string `json:"quantity" validate:"omitempty"`
}

// EstimateResponse salida de la calculadora. Todos los montos son null si el
// espectador no tiene canViewPrices.
type EstimateResponse struct {
	UnitPrice *string `json:"unit_price"`
	Total     *string `json:"total"`
	RangeLow  *string `json:"range_low"`
	RangeHigh *string `json:"range_high"`
}
