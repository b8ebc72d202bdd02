package menu

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("menu item not found")
	ErrInvalidPrice     = errors.New("price must be non-negative")
	ErrCategoryNotEmpty = errors.New("category still has items or subcategories")
)

// Service is the in-memory menu catalog: the category tree plus the item
// collection behind it.
type Service struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]*Category
	items      map[uuid.UUID]*Item
	now        func() time.Time
}

func NewService() *Service {
	return &Service{
		categories: make(map[uuid.UUID]*Category),
		items:      make(map[uuid.UUID]*Item),
		now:        time.Now,
	}
}

func (s *Service) CreateCategory(c Category) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ParentID != uuid.Nil {
		parent, ok := s.categories[c.ParentID]
		if !ok {
			return nil, fmt.Errorf("%w: parent %s", ErrCategoryNotFound, c.ParentID)
		}
		if parent.ParentID != uuid.Nil {
			return nil, errors.New("categories nest at most one level deep")
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV4())
	}
	s.categories[c.ID] = &c
	out := c
	return &out, nil
}

func (s *Service) UpdateCategory(c Category) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.categories[c.ID]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	existing.Name = c.Name
	existing.Icon = c.Icon
	existing.SortOrder = c.SortOrder
	out := *existing
	return &out, nil
}

// DeleteCategory refuses to orphan items or subcategories.
func (s *Service) DeleteCategory(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return ErrCategoryNotFound
	}
	for _, c := range s.categories {
		if c.ParentID == id {
			return ErrCategoryNotEmpty
		}
	}
	for _, it := range s.items {
		if it.CategoryID == id {
			return ErrCategoryNotEmpty
		}
	}
	delete(s.categories, id)
	return nil
}

// Categories returns the tree flattened, top-level first, each level sorted
// by SortOrder then name.
func (s *Service) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if (out[i].ParentID == uuid.Nil) != (out[j].ParentID == uuid.Nil) {
			return out[i].ParentID == uuid.Nil
		}
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (s *Service) CreateItem(it Item) (*Item, error) {
	if it.Price < 0 {
		return nil, fmt.Errorf("%w: got %.2f", ErrInvalidPrice, it.Price)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[it.CategoryID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, it.CategoryID)
	}
	if it.ID == uuid.Nil {
		it.ID = uuid.Must(uuid.NewV4())
	}
	it.UpdatedAt = s.now()
	s.items[it.ID] = it.clone()

	log.Info().Stringer("item_id", it.ID).Str("name", it.Name).Msg("menu: item created")
	return it.clone(), nil
}

func (s *Service) UpdateItem(it Item) (*Item, error) {
	if it.Price < 0 {
		return nil, fmt.Errorf("%w: got %.2f", ErrInvalidPrice, it.Price)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[it.ID]; !ok {
		return nil, ErrItemNotFound
	}
	if _, ok := s.categories[it.CategoryID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, it.CategoryID)
	}
	it.UpdatedAt = s.now()
	s.items[it.ID] = it.clone()
	return it.clone(), nil
}

func (s *Service) DeleteItem(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *Service) GetItem(id uuid.UUID) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return it.clone(), nil
}

// Duplicate copies an item under a new id, marking the copy the way the
// dashboard does.
func (s *Service) Duplicate(id uuid.UUID) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	dup := src.clone()
	dup.ID = uuid.Must(uuid.NewV4())
	dup.Name = src.Name + " (Copia)"
	dup.UpdatedAt = s.now()
	s.items[dup.ID] = dup
	return dup.clone(), nil
}

func (s *Service) SetAvailability(ids []uuid.UUID, available bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for _, id := range ids {
		it, ok := s.items[id]
		if !ok {
			continue
		}
		it.Available = available
		it.UpdatedAt = s.now()
		updated++
	}
	return updated, nil
}

// ListItems returns matching items sorted by name.
func (s *Service) ListItems(f Filter) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var catSet map[uuid.UUID]bool
	if f.CategoryID != uuid.Nil {
		catSet = map[uuid.UUID]bool{f.CategoryID: true}
		for _, c := range s.categories {
			if c.ParentID == f.CategoryID {
				catSet[c.ID] = true
			}
		}
	}

	search := strings.ToLower(f.Search)
	out := make([]Item, 0)
	for _, it := range s.items {
		if catSet != nil && !catSet[it.CategoryID] {
			continue
		}
		if f.OnlyAvailable && !it.Available {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(it.Name), search) &&
			!strings.Contains(strings.ToLower(it.Description), search) {
			continue
		}
		if f.BranchID != uuid.Nil && !containsID(it.BranchIDs, f.BranchID) {
			continue
		}
		out = append(out, *it.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
