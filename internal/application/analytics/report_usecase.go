package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// DefaultTopN productos en el ranking por valor.
const DefaultTopN = 10

// Window ventana de fechas de un reporte (lookback desde hoy).
type Window struct {
	Days  int
	Label string
}

// Ventanas predefinidas del selector de reportes.
var (
	Last7Days  = Window{Days: 7, Label: "Last 7 Days"}
	Last30Days = Window{Days: 30, Label: "Last 30 Days"}
	Last90Days = Window{Days: 90, Label: "Last 90 Days"}
)

// Cutoff inicio de la ventana: medianoche de hace Days días.
func (w Window) Cutoff(now time.Time) time.Time {
	day := now.AddDate(0, 0, -w.Days)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}

// ReportUseCase genera el snapshot de reporte para una ventana de fechas.
type ReportUseCase struct {
	snapshots SnapshotReader
	topN      int
}

// NewReportUseCase construye el caso de uso. topN <= 0 usa el default (10).
func NewReportUseCase(snapshots SnapshotReader, topN int) *ReportUseCase {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &ReportUseCase{snapshots: snapshots, topN: topN}
}

// Generate construye el reporte completo: overview con totales y movimiento
// de la ventana, desglose por categoría, top-N por valor y resumen de status.
func (uc *ReportUseCase) Generate(w Window, now time.Time) dto.ReportDTO {
	state := uc.snapshots.State()
	windowed := transactionsSince(state.Transactions, w.Cutoff(now))

	overview := dto.ReportOverviewDTO{
		TotalProducts: len(state.Products),
		TotalValue:    decimal.Zero,
	}
	for _, p := range state.Products {
		overview.TotalValue = overview.TotalValue.Add(p.Value())
		switch p.Status {
		case entity.StatusLowStock:
			overview.LowStockItems++
		case entity.StatusOutOfStock:
			overview.OutOfStockItems++
		}
	}
	for _, tx := range windowed {
		if tx.Type == entity.TypeStockIn {
			overview.StockIn += tx.Quantity
		} else {
			overview.StockOut += tx.Quantity
		}
	}
	overview.NetMovement = overview.StockIn - overview.StockOut

	return dto.ReportDTO{
		Overview:      overview,
		Categories:    CategoryBreakdown(state.Products),
		TopProducts:   TopByValue(state.Products, uc.topN),
		StatusSummary: statusSummary(state.Products),
		Transactions:  windowed,
	}
}

// CategoryBreakdown agrupa por categoría: conteo, cantidad total y valor
// total (Σ quantity*price), en orden de primera aparición en el catálogo.
func CategoryBreakdown(products []entity.Product) []dto.CategoryBreakdownDTO {
	index := map[string]int{}
	out := []dto.CategoryBreakdownDTO{}
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(out)
			index[p.Category] = i
			out = append(out, dto.CategoryBreakdownDTO{
				Category:   p.Category,
				TotalValue: decimal.Zero,
			})
		}
		out[i].Count++
		out[i].TotalQuantity += p.Quantity
		out[i].TotalValue = out[i].TotalValue.Add(p.Value())
	}
	return out
}

// TopByValue los n productos de mayor valor de stock (quantity*price),
// descendente; empates por orden original. No muta el slice de entrada.
func TopByValue(products []entity.Product, n int) []entity.Product {
	ranked := make([]entity.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value().GreaterThan(ranked[j].Value())
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// statusSummary partición por status derivado con porcentaje sobre el total;
// catálogo vacío produce cero en todo, nunca una división por cero.
func statusSummary(products []entity.Product) dto.StatusSummaryDTO {
	var in, low, out int
	for _, p := range products {
		switch p.Status {
		case entity.StatusLowStock:
			low++
		case entity.StatusOutOfStock:
			out++
		default:
			in++
		}
	}

	total := len(products)
	return dto.StatusSummaryDTO{
		InStock:    bucket(in, total),
		LowStock:   bucket(low, total),
		OutOfStock: bucket(out, total),
	}
}

func bucket(count, total int) dto.StatusBucketDTO {
	b := dto.StatusBucketDTO{Count: count, Percent: decimal.Zero}
	if total > 0 {
		b.Percent = decimal.NewFromInt(int64(count * 100)).
			Div(decimal.NewFromInt(int64(total))).Round(2)
	}
	return b
}

func transactionsSince(ledger []entity.Transaction, cutoff time.Time) []entity.Transaction {
	out := []entity.Transaction{}
	for _, tx := range ledger {
		if !tx.Date.Before(cutoff) {
			out = append(out, tx)
		}
	}
	return out
}
