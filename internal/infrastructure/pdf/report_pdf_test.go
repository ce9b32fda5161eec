package pdf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-lite/internal/application/analytics"
	"github.com/tu-usuario/inventario-lite/internal/application/inventory"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/pdf"
)

type staticSnapshot struct{ state *entity.State }

func (s staticSnapshot) State() *entity.State { return s.state }

// TestReportGenerator_GeneraDocumento smoke test: el reporte del dataset
// semilla produce un PDF no vacío.
func TestReportGenerator_GeneraDocumento(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	state := inventory.SeedState(now)
	report := analytics.NewReportUseCase(staticSnapshot{state}, 0).
		Generate(analytics.Last30Days, now)

	data, err := pdf.NewReportGenerator().Generate(report, analytics.Last30Days.Label, now)

	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "cabecera PDF")
}
