// Package stock contiene las reglas puras del nivel de stock (servicios de dominio).
package stock

import "github.com/tu-usuario/inventario-lite/internal/domain/entity"

// DeriveStatus clasifica el nivel de stock a partir de (quantity, minStock).
//
//	quantity == 0            → Out of Stock
//	0 < quantity <= minStock → Low Stock
//	quantity > minStock      → In Stock
//
// Función pura y total; todo camino que mute quantity o minStock debe llamarla.
func DeriveStatus(quantity, minStock int) entity.Status {
	switch {
	case quantity <= 0:
		return entity.StatusOutOfStock
	case quantity <= minStock:
		return entity.StatusLowStock
	default:
		return entity.StatusInStock
	}
}

// ApplyMovement devuelve la cantidad resultante de aplicar un movimiento.
// Una salida que dejaría la cantidad negativa se recorta a cero: el stock
// nunca es negativo.
func ApplyMovement(current int, t entity.TransactionType, quantity int) int {
	if t == entity.TypeStockIn {
		return current + quantity
	}
	next := current - quantity
	if next < 0 {
		return 0
	}
	return next
}
