package inventory

import "github.com/tu-usuario/inventario-lite/internal/domain/entity"

// Persister observa el Store y guarda el snapshot completo tras cada Apply.
// Desacopla la persistencia de la lógica del Store: el motor se testea sin
// ningún backend de almacenamiento.
type Persister interface {
	Save(state *entity.State) error
}
