// Package storage implementa el puente de persistencia: el estado completo
// se serializa a un único slot nombrado en disco (overwrite total, nunca
// incremental) y se recarga al arrancar.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tu-usuario/inventario-lite/internal/application/inventory"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

// FileStore guarda y carga el snapshot completo en <dir>/<slot>.json.
// Implementa inventory.Persister, así que puede suscribirse directo al Store.
type FileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore construye el puente sobre el slot indicado.
func NewFileStore(dir, slot string, log *logger.Logger) *FileStore {
	return &FileStore{
		path: filepath.Join(dir, slot+".json"),
		log:  log,
	}
}

// Load lee y decodifica el snapshot persistido.
func (fs *FileStore) Load() (*entity.State, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", fs.path, err)
	}
	var state entity.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("storage: %w: %v", domain.ErrCorruptSnapshot, err)
	}
	return &state, nil
}

// LoadOrSeed carga el snapshot persistido; ante cualquier fallo de lectura o
// parseo cae al dataset semilla en lugar de impedir el arranque.
func (fs *FileStore) LoadOrSeed(now time.Time) *entity.State {
	state, err := fs.Load()
	if err != nil {
		fs.log.Warn().Err(err).Str("path", fs.path).
			Msg("snapshot no disponible, arrancando con datos semilla")
		return inventory.SeedState(now)
	}
	fs.log.Info().Str("path", fs.path).
		Int("products", len(state.Products)).
		Int("transactions", len(state.Transactions)).
		Msg("snapshot cargado")
	return state
}

// Save sobreescribe el slot con el snapshot completo. Escribe a un archivo
// temporal y renombra para que un corte a mitad de escritura no deje un slot
// corrupto.
func (fs *FileStore) Save(state *entity.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: serializar snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("storage: crear directorio: %w", err)
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: escribir %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("storage: publicar %s: %w", fs.path, err)
	}
	return nil
}
