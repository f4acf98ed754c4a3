package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps session carts in memory. Carts live only for the duration of
// a browsing session; there is no persistence. Mutations go through
// Replace, which swaps the stored cart wholesale with the value produced
// by the Cart methods.
type Store struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[uuid.UUID]Cart)}
}

// Create registers a new empty cart and returns it.
func (s *Store) Create() Cart {
	c := New()
	s.mu.Lock()
	s.carts[c.ID] = c
	s.mu.Unlock()
	return c
}

// Get returns the cart with the given ID.
func (s *Store) Get(id uuid.UUID) (Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[id]
	return c, ok
}

// Replace stores the updated cart value. The cart must already exist;
// replacing an unknown cart is a no-op so that a concurrent checkout
// (which deletes the cart) wins over a late mutation.
func (s *Store) Replace(c Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[c.ID]; ok {
		s.carts[c.ID] = c
	}
}

// Delete removes the cart; deleting an unknown ID is a no-op.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}
