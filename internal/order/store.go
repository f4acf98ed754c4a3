package order

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/restu-food/api/internal/enum"
)

// Errors returned by the order store.
var (
	ErrNotFound           = errors.New("order not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrBackwardTransition = errors.New("status cannot move backward")
)

// Store keeps placed orders in memory. Orders are created by checkout and
// afterwards only their status changes, driven by the external
// order-management seam (the status endpoint).
type Store struct {
	mu      sync.RWMutex
	orders  map[string]Order
	nextNum int
}

func NewStore() *Store {
	return &Store{orders: make(map[string]Order), nextNum: 10000}
}

// Create assigns an order ID, stamps the initial status and creation time,
// and stores the order.
func (s *Store) Create(o Order) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = fmt.Sprintf("ORD-%05d-%04d", s.nextNum, 1000+rand.Intn(9000))
	s.nextNum++
	o.Status = enum.OrderStatusPreparing
	o.CreatedAt = time.Now()

	s.orders[o.ID] = o
	return o
}

// Get returns the order with the given ID.
func (s *Store) Get(id string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

// UpdateStatus advances an order along the fulfillment timeline.
func (s *Store) UpdateStatus(id, status string) (Order, error) {
	if !IsValidStatus(status) {
		return Order{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	if !CanTransition(o.Status, status) {
		return Order{}, ErrBackwardTransition
	}

	o.Status = status
	s.orders[id] = o
	return o, nil
}
