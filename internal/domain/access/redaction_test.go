package access_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

func TestRedactServices_ConPermiso_PassThrough(t *testing.T) {
	services := []*entity.Service{
		{ID: "s1", UnitPrice: decimal.NewFromInt(100)},
	}
	got := access.RedactServices(services, true)
	assert.Equal(t, services, got)
	assert.True(t, got[0].UnitPrice.Equal(decimal.NewFromInt(100)))
}

func TestRedactServices_SinPermiso_CopiaConCeros(t *testing.T) {
	original := decimal.NewFromInt(100)
	services := []*entity.Service{
		{ID: "s1", Name: "Instalar escalera", UnitPrice: original},
	}

	got := access.RedactServices(services, false)
	require.Len(t, got, 1)
	assert.True(t, got[0].UnitPrice.IsZero(), "el precio redactado es cero")
	assert.Equal(t, "Instalar escalera", got[0].Name, "los demás campos se conservan")

	// La colección de origen no se muta: otras rutas del request pueden
	// conservar referencias a ella.
	assert.True(t, services[0].UnitPrice.Equal(original), "el original conserva su precio")
	assert.NotSame(t, services[0], got[0], "la copia no comparte puntero con el original")
}

func TestRedactJobItems_SinPermiso_CopiaConCeros(t *testing.T) {
	items := []*entity.JobItem{
		{
			ID:        "i1",
			Quantity:  decimal.NewFromInt(3),
			UnitPrice: decimal.NewFromInt(50),
			LineTotal: decimal.NewFromInt(150),
		},
	}

	got := access.RedactJobItems(items, false)
	require.Len(t, got, 1)
	assert.True(t, got[0].UnitPrice.IsZero())
	assert.True(t, got[0].LineTotal.IsZero(), "el total derivado también se redacta")
	assert.True(t, got[0].Quantity.Equal(decimal.NewFromInt(3)), "la cantidad no es precio: se conserva")

	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(50)))
	assert.True(t, items[0].LineTotal.Equal(decimal.NewFromInt(150)))
	assert.NotSame(t, items[0], got[0])
}

func TestRedactJobItems_ConPermiso_PassThrough(t *testing.T) {
	items := []*entity.JobItem{{ID: "i1", UnitPrice: decimal.NewFromInt(50)}}
	got := access.RedactJobItems(items, true)
	assert.Same(t, items[0], got[0], "con permiso no hay copia")
}
