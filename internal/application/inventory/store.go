// Package inventory contiene el contenedor de estado del inventario y su
// protocolo de mutación (acciones etiquetadas estilo reducer).
package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/stock"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

// Prefijos de id: productos y transacciones viven en espacios disjuntos.
const (
	productIDPrefix     = "prd"
	transactionIDPrefix = "txn"
)

// Store contenedor único del estado del dominio, con un solo punto de entrada
// de mutación: Apply. Cada Apply produce un snapshot nuevo (el anterior no se
// muta), recalcula los campos derivados y notifica a los observadores.
//
// Un solo escritor lógico y sin intercalado asíncrono: no hay locking. La
// propiedad del Store y la frontera lectura/escritura quedan explícitas en
// quien lo recibe por constructor.
type Store struct {
	state     *entity.State
	log       *logger.Logger
	now       func() time.Time
	newID     func(prefix string) string
	observers []Persister
}

// Option configura el Store en construcción.
type Option func(*Store)

// WithClock reemplaza la fuente de tiempo (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator reemplaza el generador de ids (tests).
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Store) { s.newID = gen }
}

// NewStore construye el Store sobre el snapshot inicial.
func NewStore(initial *entity.State, log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		state: initial.Clone(),
		log:   log,
		now:   time.Now,
		newID: func(prefix string) string { return prefix + "_" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registra un observador que recibirá cada snapshot nuevo.
func (s *Store) Subscribe(p Persister) {
	s.observers = append(s.observers, p)
}

// State devuelve el snapshot actual. Los lectores lo tratan como inmutable.
func (s *Store) State() *entity.State {
	return s.state
}

// Apply aplica la acción y devuelve el snapshot resultante. Síncrono y
// determinista salvo generación de ids y timestamps; nunca lanza pánico con
// input bien tipado. Los misses de lookup (update/delete/adjust sobre un id
// inexistente) son no-ops silenciosos.
func (s *Store) Apply(action Action) *entity.State {
	next := s.state.Clone()

	switch a := action.(type) {
	case AddProduct:
		s.applyAdd(next, a)
	case UpdateProduct:
		s.applyUpdate(next, a)
	case DeleteProduct:
		s.applyDelete(next, a)
	case AdjustStock:
		s.applyAdjust(next, a)
	case ReplaceState:
		next = a.State.Clone()
		normalizeStatuses(next)
	}

	s.state = next
	s.notify(next)
	return next
}

func (s *Store) applyAdd(next *entity.State, a AddProduct) {
	p := entity.Product{
		ID:          s.newID(productIDPrefix),
		Name:        a.Name,
		SKU:         a.SKU,
		Category:    a.Category,
		Supplier:    a.Supplier,
		Location:    a.Location,
		Quantity:    a.Quantity,
		MinStock:    a.MinStock,
		MaxStock:    a.MaxStock,
		Price:       a.Price,
		Status:      stock.DeriveStatus(a.Quantity, a.MinStock),
		LastUpdated: s.now(),
	}
	next.Products = append(next.Products, p)
	s.log.Debug().Str("product_id", p.ID).Str("sku", p.SKU).Msg("producto agregado")
}

func (s *Store) applyUpdate(next *entity.State, a UpdateProduct) {
	i := next.FindProduct(a.Product.ID)
	if i < 0 {
		s.log.Warn().Str("product_id", a.Product.ID).Msg("update sobre producto inexistente: no-op")
		return
	}
	p := a.Product
	p.Status = stock.DeriveStatus(p.Quantity, p.MinStock)
	p.LastUpdated = s.now()
	next.Products[i] = p
}

func (s *Store) applyDelete(next *entity.State, a DeleteProduct) {
	i := next.FindProduct(a.ID)
	if i < 0 {
		s.log.Warn().Str("product_id", a.ID).Msg("delete sobre producto inexistente: no-op")
		return
	}
	next.Products = append(next.Products[:i], next.Products[i+1:]...)
}

// applyAdjust actualiza la cantidad del producto y antepone la transacción.
// Contrato explícito: si el producto no existe la acción completa es un no-op
// y NO se registra transacción huérfana.
func (s *Store) applyAdjust(next *entity.State, a AdjustStock) {
	i := next.FindProduct(a.ProductID)
	if i < 0 {
		s.log.Warn().Str("product_id", a.ProductID).Msg("ajuste sobre producto inexistente: no-op")
		return
	}

	p := next.Products[i]
	p.Quantity = stock.ApplyMovement(p.Quantity, a.Type, a.Quantity)
	p.Status = stock.DeriveStatus(p.Quantity, p.MinStock)
	p.LastUpdated = s.now()
	next.Products[i] = p

	tx := entity.Transaction{
		ID:        s.newID(transactionIDPrefix),
		ProductID: a.ProductID,
		Type:      a.Type,
		Quantity:  a.Quantity,
		Notes:     a.Notes,
		Date:      s.now(),
	}
	if tx.Notes == "" {
		tx.Notes = defaultNotes(a.Type)
	}
	// Ledger: más reciente primero
	next.Transactions = append([]entity.Transaction{tx}, next.Transactions...)

	s.log.Debug().
		Str("product_id", a.ProductID).
		Str("type", string(a.Type)).
		Int("quantity", a.Quantity).
		Int("new_quantity", p.Quantity).
		Msg("stock ajustado")
}

func (s *Store) notify(state *entity.State) {
	for _, o := range s.observers {
		if err := o.Save(state); err != nil {
			s.log.Error().Err(err).Msg("persistir snapshot")
		}
	}
}

// normalizeStatuses recalcula el status derivado de todos los productos.
// Un estado importado puede traer statuses desactualizados; el invariante
// status == DeriveStatus(quantity, minStock) se restablece aquí.
func normalizeStatuses(state *entity.State) {
	for i := range state.Products {
		p := &state.Products[i]
		p.Status = stock.DeriveStatus(p.Quantity, p.MinStock)
	}
}

func defaultNotes(t entity.TransactionType) string {
	if t == entity.TypeStockIn {
		return "Stock in"
	}
	return "Stock out"
}
