package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status clasificación del nivel de stock de un producto.
// Es un campo derivado: se recalcula en cada mutación de quantity o minStock
// y nunca lo asigna directamente la capa de presentación.
type Status string

const (
	StatusInStock    Status = "In Stock"
	StatusLowStock   Status = "Low Stock"
	StatusOutOfStock Status = "Out of Stock"
)

// Product representa un producto del inventario local.
// Quantity, MinStock y MaxStock son enteros no negativos (MaxStock >= MinStock);
// Status y LastUpdated los mantiene el Store, no el caller.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Supplier    string          `json:"supplier"`
	Location    string          `json:"location"`
	Quantity    int             `json:"quantity"`
	MinStock    int             `json:"minStock"`
	MaxStock    int             `json:"maxStock"`
	Price       decimal.Decimal `json:"price"`
	Status      Status          `json:"status"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// Value devuelve el valor total del stock del producto (quantity * price).
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
