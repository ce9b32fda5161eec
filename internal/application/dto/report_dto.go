package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// ReportDTO snapshot completo de reporte para una ventana de fechas.
type ReportDTO struct {
	Overview      ReportOverviewDTO      `json:"overview"`
	Categories    []CategoryBreakdownDTO `json:"categories"`
	TopProducts   []entity.Product       `json:"topProducts"`
	StatusSummary StatusSummaryDTO       `json:"statusSummary"`
	Transactions  []entity.Transaction   `json:"transactions"` // las de la ventana
}

// ReportOverviewDTO métricas de cabecera del reporte.
type ReportOverviewDTO struct {
	TotalProducts   int             `json:"totalProducts"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	LowStockItems   int             `json:"lowStockItems"`
	OutOfStockItems int             `json:"outOfStockItems"`
	StockIn         int             `json:"stockIn"`
	StockOut        int             `json:"stockOut"`
	NetMovement     int             `json:"netMovement"` // stockIn - stockOut
}

// CategoryBreakdownDTO agregado por categoría, en orden de primera aparición.
type CategoryBreakdownDTO struct {
	Category      string          `json:"category"`
	Count         int             `json:"count"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}

// StatusSummaryDTO partición del catálogo por status derivado; los tres
// conteos siempre suman TotalProducts del overview.
type StatusSummaryDTO struct {
	InStock    StatusBucketDTO `json:"inStock"`
	LowStock   StatusBucketDTO `json:"lowStock"`
	OutOfStock StatusBucketDTO `json:"outOfStock"`
}

// StatusBucketDTO conteo y porcentaje sobre el total (cero si el catálogo
// está vacío; nunca se divide por cero).
type StatusBucketDTO struct {
	Count   int             `json:"count"`
	Percent decimal.Decimal `json:"percent"`
}
