package menu

import (
	"time"

	"github.com/gofrs/uuid"
)

// Category is one node of the two-level catalog tree. Top-level categories
// have a nil ParentID.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	ParentID  uuid.UUID `json:"parent_id,omitempty"`
	SortOrder int       `json:"sort_order"`
}

type Item struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       float64     `json:"price"`
	CategoryID  uuid.UUID   `json:"category_id"`
	Available   bool        `json:"available"`
	Stock       int         `json:"stock"`
	Tags        []string    `json:"tags,omitempty"`
	Allergens   []string    `json:"allergens,omitempty"`
	BranchIDs   []uuid.UUID `json:"branch_ids,omitempty"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (i *Item) clone() *Item {
	c := *i
	c.Tags = append([]string(nil), i.Tags...)
	c.Allergens = append([]string(nil), i.Allergens...)
	c.BranchIDs = append([]uuid.UUID(nil), i.BranchIDs...)
	return &c
}

// Filter narrows ListItems. Zero values mean "all". CategoryID matches the
// category itself and its subcategories.
type Filter struct {
	Search        string
	CategoryID    uuid.UUID
	BranchID      uuid.UUID
	OnlyAvailable bool
}
