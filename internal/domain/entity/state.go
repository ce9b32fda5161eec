package entity

// State snapshot completo del dominio en un instante.
// Cada Apply del Store produce un snapshot nuevo; un snapshot ya publicado
// nunca se muta, de modo que todas las lecturas sobre él son consistentes.
type State struct {
	Products     []Product     `json:"products"`
	Transactions []Transaction `json:"transactions"` // más reciente primero
	Categories   []string      `json:"categories"`
	Suppliers    []string      `json:"suppliers"`
}

// Clone devuelve una copia profunda del snapshot.
func (s *State) Clone() *State {
	c := &State{
		Products:     make([]Product, len(s.Products)),
		Transactions: make([]Transaction, len(s.Transactions)),
		Categories:   make([]string, len(s.Categories)),
		Suppliers:    make([]string, len(s.Suppliers)),
	}
	copy(c.Products, s.Products)
	copy(c.Transactions, s.Transactions)
	copy(c.Categories, s.Categories)
	copy(c.Suppliers, s.Suppliers)
	return c
}

// FindProduct devuelve el índice del producto con el id dado, o -1.
func (s *State) FindProduct(id string) int {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return i
		}
	}
	return -1
}
