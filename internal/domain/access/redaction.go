package access

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// Redacción de precios: cuando el flag efectivo canViewPrices es false, toda
// colección con campos de precio se devuelve como copia con esos campos en
// cero y la capa DTO los serializa como null. Nunca se muta la colección de
// origen: otros paths del request pueden conservar referencias a ella.

// RedactServices devuelve services sin cambios si canViewPrices es true; si
// no, una copia con UnitPrice en cero para cada fila.
func RedactServices(services []*entity.Service, canViewPrices bool) []*entity.Service {
	if canViewPrices {
		return services
	}
	out := make([]*entity.Service, len(services))
	for i, s := range services {
		cp := *s
		cp.UnitPrice = decimal.Zero
		out[i] = &cp
	}
	return out
}

// RedactJobItems devuelve items sin cambios si canViewPrices es true; si no,
// una copia con UnitPrice y LineTotal (derivado) en cero por cada línea.
func RedactJobItems(items []*entity.JobItem, canViewPrices bool) []*entity.JobItem {
	if canViewPrices {
		return items
	}
	out := make([]*entity.JobItem, len(items))
	for i, it := range items {
		cp := *it
		cp.UnitPrice = decimal.Zero
		cp.LineTotal = decimal.Zero
		out[i] = &cp
	}
	return out
}
