package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// Action mutación etiquetada que el Store sabe aplicar.
// Es una unión cerrada: solo los tipos de este archivo la implementan.
type Action interface {
	isAction()
}

// AddProduct crea un producto nuevo. El Store asigna id, status y timestamp;
// la validación de campos (nombre no vacío, precio positivo, maxStock >= minStock)
// es responsabilidad del formulario que despacha, no del Store.
type AddProduct struct {
	Name     string
	SKU      string
	Category string
	Supplier string
	Location string
	Quantity int
	MinStock int
	MaxStock int
	Price    decimal.Decimal
}

// UpdateProduct reemplaza el producto cuyo id coincide con Product.ID.
// Status y LastUpdated del payload se ignoran: el Store los recalcula.
// No-op si el id no existe.
type UpdateProduct struct {
	Product entity.Product
}

// DeleteProduct elimina el producto indicado (borrado duro, sin tombstone).
// Las transacciones que lo referencian quedan intactas en el ledger.
type DeleteProduct struct {
	ID string
}

// AdjustStock aplica un movimiento de stock al producto indicado y antepone
// la transacción correspondiente al ledger. Si Notes está vacío se sintetiza
// un texto por defecto según el tipo.
type AdjustStock struct {
	ProductID string
	Type      entity.TransactionType
	Quantity  int // magnitud, positiva
	Notes     string
}

// ReplaceState sobreescribe el estado completo (import, restore, reset).
type ReplaceState struct {
	State *entity.State
}

func (AddProduct) isAction()    {}
func (UpdateProduct) isAction() {}
func (DeleteProduct) isAction() {}
func (AdjustStock) isAction()   {}
func (ReplaceState) isAction()  {}
