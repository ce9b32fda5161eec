package entity

import "time"

// Tipos de movimiento del ledger.
const (
	TypeStockIn  TransactionType = "stock_in"  // entrada
	TypeStockOut TransactionType = "stock_out" // salida
)

// TransactionType tipo de movimiento de stock.
type TransactionType string

// Transaction registro inmutable de un movimiento de stock.
// ProductID puede apuntar a un producto ya eliminado: el ledger es historia
// y nunca se borra en cascada.
type Transaction struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Type      TransactionType `json:"type"`
	Quantity  int             `json:"quantity"` // magnitud movida, siempre positiva
	Notes     string          `json:"notes"`
	Date      time.Time       `json:"date"`
}
