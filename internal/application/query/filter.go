// Package query contiene las consultas puras de listado sobre un snapshot:
// filtrado por texto/categoría/status y ordenación estable.
package query

import (
	"sort"
	"strings"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField campo de ordenación.
type SortField string

const (
	SortByName     SortField = "name"
	SortBySKU      SortField = "sku"
	SortByCategory SortField = "category"
	SortByQuantity SortField = "quantity"
	SortByPrice    SortField = "price"
	SortByUpdated  SortField = "lastUpdated"
)

// SortOrder dirección de ordenación.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Filter parámetros de listado de productos.
// Search se compara sin distinguir mayúsculas contra name y sku; Category y
// Status filtran solo si no están vacíos.
type Filter struct {
	Search   string
	Category string
	Status   entity.Status
	SortBy   SortField
	Order    SortOrder
}

// Products filtra y ordena los productos del snapshot. Pura: no muta el
// snapshot y devuelve siempre un slice nuevo. La ordenación es estable; los
// empates conservan el orden relativo original del snapshot.
func Products(state *entity.State, f Filter) []entity.Product {
	search := strings.ToLower(f.Search)

	out := make([]entity.Product, 0, len(state.Products))
	for _, p := range state.Products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, f.SortBy, f.Order)
	return out
}

// sortProducts ordena in place. Los campos de texto se comparan con un
// collator case-insensitive; los numéricos, numéricamente.
func sortProducts(products []entity.Product, field SortField, order SortOrder) {
	if field == "" {
		field = SortByName
	}
	c := collate.New(language.Und, collate.IgnoreCase)

	less := func(a, b entity.Product) bool {
		switch field {
		case SortByQuantity:
			return a.Quantity < b.Quantity
		case SortByPrice:
			return a.Price.LessThan(b.Price)
		case SortByUpdated:
			return a.LastUpdated.Before(b.LastUpdated)
		case SortBySKU:
			return c.CompareString(a.SKU, b.SKU) < 0
		case SortByCategory:
			return c.CompareString(a.Category, b.Category) < 0
		default:
			return c.CompareString(a.Name, b.Name) < 0
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		if order == Desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
