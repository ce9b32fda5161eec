package query_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-lite/internal/application/query"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/stock"
)

func product(name, sku, category string, qty, min int, price string) entity.Product {
	return entity.Product{
		ID: "prd_" + sku, Name: name, SKU: sku, Category: category,
		Quantity: qty, MinStock: min,
		Price:       decimal.RequireFromString(price),
		Status:      stock.DeriveStatus(qty, min),
		LastUpdated: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
}

func catalogState() *entity.State {
	return &entity.State{
		Products: []entity.Product{
			product("Wireless Headphones", "WH-001", "Electronics", 45, 10, "99.99"),
			product("Gaming Mouse", "GM-002", "Electronics", 8, 15, "59.99"),
			product("Office Chair", "OC-003", "Furniture", 0, 5, "299.99"),
			product("notebook set", "NB-004", "Stationery", 120, 20, "12.99"),
		},
	}
}

func names(products []entity.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

// TestProducts_BusquedaCaseInsensitive el texto se compara sin distinguir
// mayúsculas contra name y sku.
func TestProducts_BusquedaCaseInsensitive(t *testing.T) {
	got := query.Products(catalogState(), query.Filter{Search: "WIRELESS"})
	require.Len(t, got, 1)
	assert.Equal(t, "WH-001", got[0].SKU)

	got = query.Products(catalogState(), query.Filter{Search: "gm-"})
	require.Len(t, got, 1)
	assert.Equal(t, "Gaming Mouse", got[0].Name)
}

func TestProducts_FiltroCategoriaYStatus(t *testing.T) {
	got := query.Products(catalogState(), query.Filter{Category: "Electronics"})
	assert.Equal(t, []string{"Gaming Mouse", "Wireless Headphones"}, names(got))

	got = query.Products(catalogState(), query.Filter{Status: entity.StatusOutOfStock})
	assert.Equal(t, []string{"Office Chair"}, names(got))

	got = query.Products(catalogState(), query.Filter{
		Category: "Electronics",
		Status:   entity.StatusLowStock,
	})
	assert.Equal(t, []string{"Gaming Mouse"}, names(got))
}

// TestProducts_OrdenPorNombre la ordenación de texto ignora mayúsculas:
// "notebook set" no se va al final por empezar en minúscula.
func TestProducts_OrdenPorNombre(t *testing.T) {
	got := query.Products(catalogState(), query.Filter{SortBy: query.SortByName, Order: query.Asc})
	assert.Equal(t,
		[]string{"Gaming Mouse", "notebook set", "Office Chair", "Wireless Headphones"},
		names(got))
}

func TestProducts_OrdenNumericoDescendente(t *testing.T) {
	got := query.Products(catalogState(), query.Filter{SortBy: query.SortByQuantity, Order: query.Desc})
	assert.Equal(t,
		[]string{"notebook set", "Wireless Headphones", "Gaming Mouse", "Office Chair"},
		names(got))

	got = query.Products(catalogState(), query.Filter{SortBy: query.SortByPrice, Order: query.Asc})
	assert.Equal(t, "notebook set", got[0].Name)
	assert.Equal(t, "Office Chair", got[3].Name)
}

// TestProducts_EmpatesConservanOrdenOriginal ordenación estable: claves
// iguales mantienen el índice relativo del snapshot.
func TestProducts_EmpatesConservanOrdenOriginal(t *testing.T) {
	state := &entity.State{
		Products: []entity.Product{
			product("Alpha", "A-1", "X", 10, 1, "5.00"),
			product("Bravo", "B-1", "X", 10, 1, "5.00"),
			product("Charlie", "C-1", "X", 10, 1, "5.00"),
		},
	}
	got := query.Products(state, query.Filter{SortBy: query.SortByQuantity, Order: query.Asc})
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, names(got))

	got = query.Products(state, query.Filter{SortBy: query.SortByPrice, Order: query.Desc})
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, names(got))
}

// TestProducts_Idempotente dos ejecuciones con parámetros idénticos sobre el
// mismo snapshot devuelven exactamente la misma secuencia.
func TestProducts_Idempotente(t *testing.T) {
	state := catalogState()
	f := query.Filter{Search: "o", SortBy: query.SortByPrice, Order: query.Desc}

	first := query.Products(state, f)
	second := query.Products(state, f)

	assert.Equal(t, first, second)
}

func TestProducts_EntradaVaciaDevuelveVacio(t *testing.T) {
	got := query.Products(&entity.State{}, query.Filter{Search: "x"})
	assert.Empty(t, got)
}

// TestProducts_NoMutaElSnapshot la consulta es de solo lectura.
func TestProducts_NoMutaElSnapshot(t *testing.T) {
	state := catalogState()
	before := names(state.Products)

	query.Products(state, query.Filter{SortBy: query.SortByQuantity, Order: query.Desc})

	assert.Equal(t, before, names(state.Products))
}
