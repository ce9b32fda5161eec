package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// DashboardSummaryDTO KPIs del panel principal.
type DashboardSummaryDTO struct {
	TotalProducts   int             `json:"totalProducts"`
	LowStockItems   int             `json:"lowStockItems"`
	OutOfStockItems int             `json:"outOfStockItems"`
	TotalValue      decimal.Decimal `json:"totalValue"` // Σ quantity * price
}

// SystemInfoDTO contadores de la pantalla de ajustes.
type SystemInfoDTO struct {
	Products     int `json:"products"`
	Transactions int `json:"transactions"`
	Categories   int `json:"categories"`
	Suppliers    int `json:"suppliers"`
}

// StockAlertsDTO widget de alertas: agotados primero, luego stock bajo, en el
// orden original del catálogo, recortado al límite de despliegue.
type StockAlertsDTO struct {
	Items    []StockAlertDTO `json:"items"`
	Overflow int             `json:"overflow"` // alertas que no cupieron en el límite
}

// StockAlertDTO una fila del widget de alertas.
type StockAlertDTO struct {
	ProductID string        `json:"productId"`
	Name      string        `json:"name"`
	Quantity  int           `json:"quantity"`
	MinStock  int           `json:"minStock"`
	Status    entity.Status `json:"status"`
}

// ActivityEntryDTO movimiento reciente unido con su producto aún existente.
type ActivityEntryDTO struct {
	Transaction entity.Transaction `json:"transaction"`
	ProductName string             `json:"productName"`
}

// CategoryChartDTO una barra del gráfico de inventario por categoría.
type CategoryChartDTO struct {
	Category   string          `json:"category"`
	TotalItems int             `json:"totalItems"`
	TotalValue decimal.Decimal `json:"totalValue"`
	InStock    int             `json:"inStock"`
	LowStock   int             `json:"lowStock"`
	OutOfStock int             `json:"outOfStock"`
	// Share porcentaje del valor de la categoría sobre el máximo entre
	// categorías (ancho de la barra); cero si no hay productos.
	Share decimal.Decimal `json:"share"`
}
