package main

import (
	"time"

	"github.com/tu-usuario/inventario-lite/internal/application/analytics"
	"github.com/tu-usuario/inventario-lite/internal/application/inventory"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/storage"
	"github.com/tu-usuario/inventario-lite/pkg/config"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

// El proceso anfitrión: carga (o siembra) el snapshot persistido, construye
// el Store con el puente de persistencia suscrito y deja todo listo para que
// la capa de presentación despache acciones y lea agregados. No expone red
// ni flags: toda la superficie son llamadas in-process.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	fileStore := storage.NewFileStore(cfg.Data.Dir, cfg.Data.Slot, log)
	initial := fileStore.LoadOrSeed(time.Now())

	store := inventory.NewStore(initial, log)
	store.Subscribe(fileStore)

	dashboard := analytics.NewDashboardUseCase(store, cfg.Report.AlertLimit, cfg.Report.ActivityLimit)
	summary := dashboard.Summary()
	log.Info().
		Int("products", summary.TotalProducts).
		Int("low_stock", summary.LowStockItems).
		Int("out_of_stock", summary.OutOfStockItems).
		Str("total_value", summary.TotalValue.StringFixed(2)).
		Msg("inventario listo")
}
