package order

import (
	"errors"
	"sync"

	"github.com/gofrs/uuid"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrItemNotFound     = errors.New("line item not found")
	ErrDuplicateOrderID = errors.New("order with this id already exists")
)

// Store owns the authoritative in-memory order set for the session. It keeps
// insertion order for listings and hands out deep copies only.
type Store struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*Order
	seq    []uuid.UUID
}

func NewStore() *Store {
	return &Store{orders: make(map[uuid.UUID]*Order)}
}

func (s *Store) Add(o *Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.ID]; ok {
		return ErrDuplicateOrderID
	}
	s.orders[o.ID] = o.Clone()
	s.seq = append(s.seq, o.ID)
	return nil
}

// Get returns a snapshot copy of the order.
func (s *Store) Get(id uuid.UUID) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o.Clone(), nil
}

// List returns snapshot copies of all orders in insertion order.
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0, len(s.seq))
	for _, id := range s.seq {
		out = append(out, *s.orders[id].Clone())
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// update applies fn to the live order under the write lock and returns a
// snapshot of the result. fn returning an error leaves the order untouched
// only if fn itself did not mutate it; mutating operations validate before
// they write.
func (s *Store) update(id uuid.UUID, fn func(*Order) error) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if err := fn(o); err != nil {
		return nil, err
	}
	return o.Clone(), nil
}
