// Package branch holds restaurant location records. Branches are opaque
// reference data: other packages only read them.
package branch

import (
	"errors"
	"sort"
	"sync"

	"github.com/gofrs/uuid"
)

var ErrNotFound = errors.New("branch not found")

type Branch struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Code    string    `json:"code"`
	Address string    `json:"address,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Status  string    `json:"status"`
}

type Store struct {
	mu sync.RWMutex
	m  map[uuid.UUID]Branch
}

func NewStore() *Store {
	return &Store{m: make(map[uuid.UUID]Branch)}
}

func (s *Store) Put(b Branch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[b.ID] = b
}

func (s *Store) Get(id uuid.UUID) (Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.m[id]
	if !ok {
		return Branch{}, ErrNotFound
	}
	return b, nil
}

func (s *Store) List() []Branch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Branch, 0, len(s.m))
	for _, b := range s.m {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SeedDemo loads the reference branch records and returns them in seed order.
func (s *Store) SeedDemo() []Branch {
	branches := []Branch{
		{ID: uuid.Must(uuid.NewV4()), Name: "Sucursal Centro", Code: "centro", Address: "Av. Principal 123", Phone: "+34 910 000 001", Status: "active"},
		{ID: uuid.Must(uuid.NewV4()), Name: "Sucursal Norte", Code: "norte", Address: "Calle Norte 456", Phone: "+34 910 000 002", Status: "active"},
		{ID: uuid.Must(uuid.NewV4()), Name: "Sucursal Sur", Code: "sur", Address: "Av. Sur 789", Phone: "+34 910 000 003", Status: "active"},
	}
	for _, b := range branches {
		s.Put(b)
	}
	return branches
}
