// Package pdf renderiza el snapshot de reporte a un PDF descargable.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + rango de fechas + generado el              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OVERVIEW: productos / valor total / entradas / salidas      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: inventario por categoría                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: top productos por valor de stock                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

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

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator renderiza un dto.ReportDTO usando Maroto v2.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *ReportGenerator) Generate(report dto.ReportDTO, dateRange string, now time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventory Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(dateRange, now))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(overviewRow(report.Overview))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Inventario por categoría"))
	m.AddRows(categoryHeaderRow())
	for _, r := range categoryRows(report.Categories) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("Top productos por valor de stock"))
	m.AddRows(topProductsHeaderRow())
	for _, r := range topProductRows(report.TopProducts) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(dateRange string, now time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Reporte de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Rango: "+dateRange, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// overviewRow métricas de cabecera en cuatro columnas.
func overviewRow(o dto.ReportOverviewDTO) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 1, Align: align.Center}),
			text.New(label, props.Text{Size: 7, Top: 8, Color: colorGray, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		metric("Productos", strconv.Itoa(o.TotalProducts)),
		metric("Valor total", "$"+o.TotalValue.StringFixed(2)),
		metric("Entradas (ventana)", strconv.Itoa(o.StockIn)),
		metric("Salidas (ventana)", strconv.Itoa(o.StockOut)),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

func categoryHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Categoría", 5, align.Left),
		tableHeader("Productos", 2, align.Center),
		tableHeader("Cantidad", 2, align.Center),
		tableHeader("Valor", 3, align.Right),
	)
}

func categoryRows(categories []dto.CategoryBreakdownDTO) []core.Row {
	result := make([]core.Row, 0, len(categories))
	for _, c := range categories {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(c.Category, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(c.Count), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(strconv.Itoa(c.TotalQuantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New("$"+c.TotalValue.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func topProductsHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Producto", 5, align.Left),
		tableHeader("SKU", 2, align.Left),
		tableHeader("Stock", 2, align.Center),
		tableHeader("Valor", 3, align.Right),
	)
}

func topProductRows(products []entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(p.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New("$"+p.Value().StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func tableHeader(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 1, Left: 1, Right: 1,
	}))
}
