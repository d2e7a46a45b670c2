package cart

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrCartNotFound = errors.New("cart not found")

// Store keeps live cart sessions in memory, one per customer session. Cart
// contents are not persisted; only the resulting order is.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Create opens a new cart session for a company and returns its id.
func (s *Store) Create(companyID string) (string, *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	c := New(companyID)
	s.carts[id] = c
	return id, c
}

func (s *Store) Get(cartID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return c, nil
}

func (s *Store) Delete(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
}
