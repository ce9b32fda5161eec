// Package backup implementa el intercambio de documentos con el usuario:
// respaldo completo, snapshot de reporte e importación todo-o-nada.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// Document respaldo completo del estado para descarga.
// El layout de campos es un contrato con el consumidor humano, no un
// protocolo de wire con versionado.
type Document struct {
	Products     []entity.Product     `json:"products"`
	Transactions []entity.Transaction `json:"transactions"`
	Categories   []string             `json:"categories"`
	Suppliers    []string             `json:"suppliers"`
	ExportedAt   time.Time            `json:"exportedAt"`
}

// ReportDocument snapshot de reporte para descarga.
type ReportDocument struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	DateRange   string        `json:"dateRange"`
	Data        dto.ReportDTO `json:"data"`
}

// Export serializa el estado completo como respaldo JSON legible.
func Export(state *entity.State, now time.Time) ([]byte, error) {
	doc := Document{
		Products:     state.Products,
		Transactions: state.Transactions,
		Categories:   state.Categories,
		Suppliers:    state.Suppliers,
		ExportedAt:   now,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("backup: exportar estado: %w", err)
	}
	return data, nil
}

// ExportReport serializa un snapshot de reporte con sus metadatos.
func ExportReport(report dto.ReportDTO, dateRange string, now time.Time) ([]byte, error) {
	doc := ReportDocument{
		GeneratedAt: now,
		DateRange:   dateRange,
		Data:        report,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("backup: exportar reporte: %w", err)
	}
	return data, nil
}

// Import decodifica un documento suministrado por el usuario. Se acepta solo
// si trae un arreglo bajo "products"; cualquier otra cosa devuelve
// domain.ErrInvalidBackup y el estado en memoria no se toca (el caller
// despacha ReplaceState únicamente con un resultado no nil).
func Import(data []byte) (*entity.State, error) {
	var doc struct {
		Products     *[]entity.Product    `json:"products"`
		Transactions []entity.Transaction `json:"transactions"`
		Categories   []string             `json:"categories"`
		Suppliers    []string             `json:"suppliers"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBackup, err)
	}
	if doc.Products == nil {
		return nil, fmt.Errorf("%w: falta el arreglo products", domain.ErrInvalidBackup)
	}

	state := &entity.State{
		Products:     *doc.Products,
		Transactions: doc.Transactions,
		Categories:   doc.Categories,
		Suppliers:    doc.Suppliers,
	}
	if state.Transactions == nil {
		state.Transactions = []entity.Transaction{}
	}
	if state.Categories == nil {
		state.Categories = []string{}
	}
	if state.Suppliers == nil {
		state.Suppliers = []string{}
	}
	return state, nil
}
