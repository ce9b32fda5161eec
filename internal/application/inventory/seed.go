package inventory

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/stock"
)

// Registros por defecto de los selectores de categoría y proveedor.
// No se validan referencialmente contra los productos.
var (
	defaultCategories = []string{"Electronics", "Furniture", "Stationery", "Clothing", "Books"}
	defaultSuppliers  = []string{"TechCorp", "GameTech", "FurniCorp", "PaperPlus", "StyleCorp"}
)

// SeedState dataset fijo de arranque: se usa cuando el slot persistido no
// existe o no se puede leer.
func SeedState(now time.Time) *entity.State {
	products := []entity.Product{
		seedProduct("prd_seed_1", "Wireless Headphones", "WH-001", "Electronics", "TechCorp", "Warehouse A", 45, 10, 100, "99.99", now),
		seedProduct("prd_seed_2", "Gaming Mouse", "GM-002", "Electronics", "GameTech", "Warehouse A", 8, 15, 50, "59.99", now),
		seedProduct("prd_seed_3", "Office Chair", "OC-003", "Furniture", "FurniCorp", "Warehouse B", 0, 5, 25, "299.99", now),
		seedProduct("prd_seed_4", "Notebook Set", "NB-004", "Stationery", "PaperPlus", "Warehouse C", 120, 20, 200, "12.99", now),
	}
	transactions := []entity.Transaction{
		{ID: "txn_seed_2", ProductID: "prd_seed_2", Type: entity.TypeStockOut, Quantity: 7, Notes: "Customer order fulfillment", Date: now},
		{ID: "txn_seed_1", ProductID: "prd_seed_1", Type: entity.TypeStockIn, Quantity: 20, Notes: "Weekly restock", Date: now},
	}
	return &entity.State{
		Products:     products,
		Transactions: transactions,
		Categories:   append([]string(nil), defaultCategories...),
		Suppliers:    append([]string(nil), defaultSuppliers...),
	}
}

// EmptyState estado vacío con los registros por defecto ("borrar todo").
func EmptyState() *entity.State {
	return &entity.State{
		Products:     []entity.Product{},
		Transactions: []entity.Transaction{},
		Categories:   append([]string(nil), defaultCategories...),
		Suppliers:    append([]string(nil), defaultSuppliers...),
	}
}

func seedProduct(id, name, sku, category, supplier, location string, qty, min, max int, price string, now time.Time) entity.Product {
	return entity.Product{
		ID:          id,
		Name:        name,
		SKU:         sku,
		Category:    category,
		Supplier:    supplier,
		Location:    location,
		Quantity:    qty,
		MinStock:    min,
		MaxStock:    max,
		Price:       decimal.RequireFromString(price),
		Status:      stock.DeriveStatus(qty, min),
		LastUpdated: now,
	}
}
