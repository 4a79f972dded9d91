// Package pdf implementa la generación del documento de cotización que el
// contratista entrega a su cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre empresa  │  COTIZACIÓN + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPRESA: Dirección / Tel / Email                            │
//	│  CLIENTE: Nombre + contacto + dirección de la obra           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Subtotal               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	│  FOOTER: vigencia + notas                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appquote "github.com/jhoicas/Cotizador-api/internal/application/quote"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 94, Blue: 83}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoQuoteGenerator implementa quote.QuotePDFGenerator usando Maroto v2.
type MarotoQuoteGenerator struct{}

// NewMarotoQuoteGenerator construye el generador.
func NewMarotoQuoteGenerator() *MarotoQuoteGenerator { return &MarotoQuoteGenerator{} }

// GenerateQuotePDF genera el PDF y devuelve sus bytes.
func (g *MarotoQuoteGenerator) GenerateQuotePDF(_ context.Context, data appquote.QuoteData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+data.Job.Title, true).
		WithAuthor(data.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(companyRow(data.Company))
	m.AddRows(customerRow(data.Job))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(data.PriceVisible))
	for _, r := range tableItemRows(data.Items, data.PriceVisible) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	if data.PriceVisible {
		m.AddRows(totalRow(data))
	}

	m.AddRows(line.NewRow(3))
	for _, r := range footerRows(data) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa (izq) y COTIZACIÓN + fecha (der).
func headerRow(data appquote.QuoteData) core.Row {
	fecha := data.IssuedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Job.Title, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+shortRef(data.Job.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// companyRow: datos de contacto de la empresa que cotiza.
func companyRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("EMPRESA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(company.Address, "—"),
				nonEmpty(company.Phone, "—"),
				nonEmpty(company.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// customerRow: datos del cliente y la obra.
func customerRow(job *entity.Job) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(job.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Dirección: %s",
				nonEmpty(job.CustomerPhone, "—"),
				nonEmpty(job.CustomerAddress, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas. Sin visibilidad de precios
// las columnas de montos no se imprimen.
func tableHeaderRow(priceVisible bool) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	if !priceVisible {
		return row.New(8).Add(
			h("Cant.", 2, align.Center),
			h("Descripción del servicio", 10, align.Left),
		)
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción del servicio", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de cotización.
func tableItemRows(items []*entity.JobItem, priceVisible bool) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		if !priceVisible {
			result = append(result, row.New(7).Add(
				col.New(2).Add(text.New(
					it.Quantity.String(),
					props.Text{Size: 8, Align: align.Center, Top: 1},
				)),
				col.New(10).Add(text.New(
					it.Description,
					props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
				)),
			))
			continue
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+it.LineTotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total de la cotización alineado a la derecha.
func totalRow(data appquote.QuoteData) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(
			fmt.Sprintf("$%s %s", data.Total.StringFixed(2), data.Currency),
			props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			},
		)),
	)
}

// footerRows: vigencia de la cotización y notas del trabajo.
func footerRows(data appquote.QuoteData) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Cotización válida hasta el %s.",
				data.ValidUntil.Format("02/01/2006")), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if data.Job.Notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Notas: "+data.Job.Notes, props.Text{
				Size: 7.5, Color: colorGray, Top: 2,
			}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Los precios cotizados no incluyen trabajos adicionales no descritos. "+
				"Cualquier cambio de alcance se cotiza por separado.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortRef recorta un UUID a su primer segmento para el número visible.
func shortRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
