// Package pricing implementa la aritmética de cotización: precio base por
// multiplicador ancla, de material y de complejidad, con redondeo a centavos.
// Servicio de dominio puro, sin persistencia ni estado.
package pricing

import "github.com/shopspring/decimal"

// Anchor multiplicador fijo aplicado a todo precio base antes de los
// multiplicadores de material y complejidad.
var Anchor = decimal.NewFromFloat(1.15)

// Niveles de material y complejidad reconocidos.
const (
	MaterialBasic    = "basic"
	MaterialStandard = "standard"
	MaterialPremium  = "premium"

	ComplexityNormal = "normal"
	ComplexityHard   = "hard"
)

var materialMultipliers = map[string]decimal.Decimal{
	MaterialBasic:    decimal.NewFromFloat(1.0),
	MaterialStandard: decimal.NewFromFloat(1.15),
	MaterialPremium:  decimal.NewFromFloat(1.35),
}

var complexityMultipliers = map[string]decimal.Decimal{
	ComplexityNormal: decimal.NewFromFloat(1.0),
	ComplexityHard:   decimal.NewFromFloat(1.2),
}

// MaterialMultiplier devuelve el multiplicador del nivel de material.
// Un nivel desconocido cae al básico (1.0).
func MaterialMultiplier(tier string) decimal.Decimal {
	if m, ok := materialMultipliers[tier]; ok {
		return m
	}
	return materialMultipliers[MaterialBasic]
}

// ComplexityMultiplier devuelve el multiplicador del nivel de complejidad.
// Un nivel desconocido cae al normal (1.0).
func ComplexityMultiplier(level string) decimal.Decimal {
	if m, ok := complexityMultipliers[level]; ok {
		return m
	}
	return complexityMultipliers[ComplexityNormal]
}

// UnitPrice calcula basePrice × ancla × material × complejidad, redondeado a
// centavos. unitPrice = basePrice × 1.15 × matMult × cxMult.
func UnitPrice(basePrice decimal.Decimal, materialTier, complexityLevel string) decimal.Decimal {
	p := basePrice.
		Mul(Anchor).
		Mul(MaterialMultiplier(materialTier)).
		Mul(ComplexityMultiplier(complexityLevel))
	return p.Round(2)
}

// Total calcula unitPrice × quantity, redondeado a centavos.
func Total(unitPrice, quantity decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(quantity).Round(2)
}

// Range devuelve el rango bajo/alto a mostrar para un precio base: el bajo
// usa la combinación más barata (básico + normal) y el alto la más cara
// (premium + hard).
func Range(basePrice decimal.Decimal) (low, high decimal.Decimal) {
	low = UnitPrice(basePrice, MaterialBasic, ComplexityNormal)
	high = UnitPrice(basePrice, MaterialPremium, ComplexityHard)
	return low, high
}
