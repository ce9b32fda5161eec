// Package analytics contiene los casos de uso de agregación y reportes:
// lecturas puras sobre un snapshot del inventario, sin mutación.
package analytics

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// Límites por defecto de los widgets (los mismos de la interfaz).
const (
	DefaultAlertLimit    = 8
	DefaultActivityLimit = 10
)

// SnapshotReader entrega el snapshot actual del inventario (solo lectura).
// El Store lo implementa; los tests pueden pasar un snapshot fijo.
type SnapshotReader interface {
	State() *entity.State
}

// DashboardUseCase construye los widgets del panel principal.
// Todas las operaciones son funciones puras del snapshot: con entrada vacía
// devuelven colecciones vacías y agregados en cero, nunca fallan.
type DashboardUseCase struct {
	snapshots     SnapshotReader
	alertLimit    int
	activityLimit int
}

// NewDashboardUseCase construye el caso de uso. Límites <= 0 usan los defaults.
func NewDashboardUseCase(snapshots SnapshotReader, alertLimit, activityLimit int) *DashboardUseCase {
	if alertLimit <= 0 {
		alertLimit = DefaultAlertLimit
	}
	if activityLimit <= 0 {
		activityLimit = DefaultActivityLimit
	}
	return &DashboardUseCase{
		snapshots:     snapshots,
		alertLimit:    alertLimit,
		activityLimit: activityLimit,
	}
}

// Summary KPIs de cabecera: total de productos, items en alerta y valor total.
func (uc *DashboardUseCase) Summary() dto.DashboardSummaryDTO {
	state := uc.snapshots.State()

	out := dto.DashboardSummaryDTO{
		TotalProducts: len(state.Products),
		TotalValue:    decimal.Zero,
	}
	for _, p := range state.Products {
		out.TotalValue = out.TotalValue.Add(p.Value())
		switch p.Status {
		case entity.StatusLowStock:
			out.LowStockItems++
		case entity.StatusOutOfStock:
			out.OutOfStockItems++
		}
	}
	return out
}

// SystemInfo contadores simples del estado para la pantalla de ajustes.
func (uc *DashboardUseCase) SystemInfo() dto.SystemInfoDTO {
	state := uc.snapshots.State()
	return dto.SystemInfoDTO{
		Products:     len(state.Products),
		Transactions: len(state.Transactions),
		Categories:   len(state.Categories),
		Suppliers:    len(state.Suppliers),
	}
}

// StockAlerts agotados primero, luego stock bajo, ambos en el orden original
// del catálogo; recorta al límite y reporta aparte cuántas no cupieron.
func (uc *DashboardUseCase) StockAlerts() dto.StockAlertsDTO {
	state := uc.snapshots.State()

	var alerts []dto.StockAlertDTO
	for _, p := range state.Products {
		if p.Status == entity.StatusOutOfStock {
			alerts = append(alerts, alertRow(p))
		}
	}
	for _, p := range state.Products {
		if p.Status == entity.StatusLowStock {
			alerts = append(alerts, alertRow(p))
		}
	}

	out := dto.StockAlertsDTO{Items: alerts}
	if len(alerts) > uc.alertLimit {
		out.Items = alerts[:uc.alertLimit]
		out.Overflow = len(alerts) - uc.alertLimit
	}
	return out
}

// RecentActivity toma los N movimientos más recientes del ledger y los une
// con su producto; los de productos ya eliminados se excluyen en silencio
// (por eso puede devolver menos de N aun habiendo más movimientos válidos).
func (uc *DashboardUseCase) RecentActivity() []dto.ActivityEntryDTO {
	state := uc.snapshots.State()

	recent := state.Transactions
	if len(recent) > uc.activityLimit {
		recent = recent[:uc.activityLimit]
	}

	out := make([]dto.ActivityEntryDTO, 0, len(recent))
	for _, tx := range recent {
		i := state.FindProduct(tx.ProductID)
		if i < 0 {
			continue
		}
		out = append(out, dto.ActivityEntryDTO{
			Transaction: tx,
			ProductName: state.Products[i].Name,
		})
	}
	return out
}

// CategoryChart datos del gráfico de inventario por categoría: conteos por
// status, valor total y el ancho de barra relativo al máximo.
func (uc *DashboardUseCase) CategoryChart() []dto.CategoryChartDTO {
	state := uc.snapshots.State()

	index := map[string]int{}
	var bars []dto.CategoryChartDTO
	for _, p := range state.Products {
		i, ok := index[p.Category]
		if !ok {
			i = len(bars)
			index[p.Category] = i
			bars = append(bars, dto.CategoryChartDTO{
				Category:   p.Category,
				TotalValue: decimal.Zero,
				Share:      decimal.Zero,
			})
		}
		bars[i].TotalItems++
		bars[i].TotalValue = bars[i].TotalValue.Add(p.Value())
		switch p.Status {
		case entity.StatusInStock:
			bars[i].InStock++
		case entity.StatusLowStock:
			bars[i].LowStock++
		case entity.StatusOutOfStock:
			bars[i].OutOfStock++
		}
	}

	maxValue := decimal.Zero
	for _, b := range bars {
		if b.TotalValue.GreaterThan(maxValue) {
			maxValue = b.TotalValue
		}
	}
	if maxValue.IsPositive() {
		hundred := decimal.NewFromInt(100)
		for i := range bars {
			bars[i].Share = bars[i].TotalValue.Div(maxValue).Mul(hundred).Round(2)
		}
	}
	return bars
}

func alertRow(p entity.Product) dto.StockAlertDTO {
	return dto.StockAlertDTO{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		MinStock:  p.MinStock,
		Status:    p.Status,
	}
}
