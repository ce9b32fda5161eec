package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-lite/internal/application/analytics"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

func dashboardState() *entity.State {
	return &entity.State{
		Products: []entity.Product{
			product("p1", "Headphones", "Electronics", 45, 10, "99.99"),
			product("p2", "Mouse", "Electronics", 8, 15, "59.99"),
			product("p3", "Chair", "Furniture", 0, 5, "299.99"),
			product("p4", "Notebook", "Stationery", 120, 20, "12.99"),
		},
		Transactions: []entity.Transaction{
			{ID: "t2", ProductID: "p2", Type: entity.TypeStockOut, Quantity: 7, Date: reportNow},
			{ID: "t1", ProductID: "p1", Type: entity.TypeStockIn, Quantity: 20, Date: reportNow},
		},
	}
}

func TestDashboard_Summary(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fixedSnapshot{dashboardState()}, 0, 0)

	got := uc.Summary()

	assert.Equal(t, 4, got.TotalProducts)
	assert.Equal(t, 1, got.LowStockItems)
	assert.Equal(t, 1, got.OutOfStockItems)
	// 45*99.99 + 8*59.99 + 0*299.99 + 120*12.99 = 4499.55 + 479.92 + 1558.80
	assert.True(t, got.TotalValue.Equal(decimal.RequireFromString("6538.27")),
		"valor total = Σ quantity*price, obtuve %s", got.TotalValue)
}

// TestDashboard_AlertasAgotadosPrimero agotados antes que stock bajo, ambos
// en el orden original del catálogo.
func TestDashboard_AlertasAgotadosPrimero(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fixedSnapshot{dashboardState()}, 0, 0)

	got := uc.StockAlerts()

	require.Len(t, got.Items, 2)
	assert.Equal(t, "Chair", got.Items[0].Name)
	assert.Equal(t, entity.StatusOutOfStock, got.Items[0].Status)
	assert.Equal(t, "Mouse", got.Items[1].Name)
	assert.Equal(t, 0, got.Overflow)
}

// TestDashboard_AlertasConDesborde el límite recorta la lista y el resto se
// reporta como overflow.
func TestDashboard_AlertasConDesborde(t *testing.T) {
	state := &entity.State{}
	for i := 0; i < 5; i++ {
		state.Products = append(state.Products,
			product(string(rune('a'+i)), "Low", "X", 1, 10, "1"))
	}
	uc := analytics.NewDashboardUseCase(fixedSnapshot{state}, 3, 0)

	got := uc.StockAlerts()

	assert.Len(t, got.Items, 3)
	assert.Equal(t, 2, got.Overflow)
}

// TestDashboard_ActividadExcluyeProductosBorrados un movimiento cuyo producto
// ya no existe se omite del join en silencio.
func TestDashboard_ActividadExcluyeProductosBorrados(t *testing.T) {
	state := dashboardState()
	state.Transactions = append([]entity.Transaction{
		{ID: "t3", ProductID: "p_borrado", Type: entity.TypeStockOut, Quantity: 1, Date: reportNow},
	}, state.Transactions...)
	uc := analytics.NewDashboardUseCase(fixedSnapshot{state}, 0, 0)

	got := uc.RecentActivity()

	require.Len(t, got, 2)
	assert.Equal(t, "Mouse", got[0].ProductName)
	assert.Equal(t, "Headphones", got[1].ProductName)
}

func TestDashboard_ActividadRespetaLimite(t *testing.T) {
	state := dashboardState()
	uc := analytics.NewDashboardUseCase(fixedSnapshot{state}, 0, 1)

	got := uc.RecentActivity()

	require.Len(t, got, 1)
	assert.Equal(t, "t2", got[0].Transaction.ID, "se toma el más reciente del ledger")
}

func TestDashboard_CategoryChart(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fixedSnapshot{dashboardState()}, 0, 0)

	got := uc.CategoryChart()

	require.Len(t, got, 3)
	assert.Equal(t, "Electronics", got[0].Category, "orden de primera aparición")
	assert.Equal(t, 2, got[0].TotalItems)
	assert.Equal(t, 1, got[0].InStock)
	assert.Equal(t, 1, got[0].LowStock)
	// Electronics tiene el valor máximo → barra al 100%
	assert.True(t, got[0].Share.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Furniture", got[1].Category)
	assert.Equal(t, 1, got[1].OutOfStock)
	assert.True(t, got[1].Share.IsZero(), "categoría sin valor de stock")
}

func TestDashboard_SystemInfo(t *testing.T) {
	state := dashboardState()
	state.Categories = []string{"Electronics", "Furniture"}
	state.Suppliers = []string{"TechCorp"}
	uc := analytics.NewDashboardUseCase(fixedSnapshot{state}, 0, 0)

	info := uc.SystemInfo()

	assert.Equal(t, 4, info.Products)
	assert.Equal(t, 2, info.Transactions)
	assert.Equal(t, 2, info.Categories)
	assert.Equal(t, 1, info.Suppliers)
}

func TestDashboard_EstadoVacio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fixedSnapshot{&entity.State{}}, 0, 0)

	assert.Equal(t, 0, uc.Summary().TotalProducts)
	assert.True(t, uc.Summary().TotalValue.IsZero())
	assert.Empty(t, uc.StockAlerts().Items)
	assert.Empty(t, uc.RecentActivity())
	assert.Empty(t, uc.CategoryChart())
}
