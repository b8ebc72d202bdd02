package menu

import (
	"fmt"

	"github.com/gofrs/uuid"
)

// SeedDemo loads the demo catalog. branchIDs are assigned round-robin-ish the
// way the reference data spreads items across locations; fewer than two
// branches means no branch assignment.
func (s *Service) SeedDemo(branchIDs []uuid.UUID) error {
	pick := func(idx ...int) []uuid.UUID {
		var out []uuid.UUID
		for _, i := range idx {
			if i < len(branchIDs) {
				out = append(out, branchIDs[i])
			}
		}
		return out
	}

	mains, err := s.CreateCategory(Category{Name: "Platos Principales", Icon: "UtensilsCrossed", SortOrder: 1})
	if err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	meats, err := s.CreateCategory(Category{Name: "Carnes", Icon: "Beef", ParentID: mains.ID, SortOrder: 1})
	if err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	fish, err := s.CreateCategory(Category{Name: "Pescados", Icon: "Fish", ParentID: mains.ID, SortOrder: 2})
	if err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	drinks, err := s.CreateCategory(Category{Name: "Bebidas", Icon: "Coffee", SortOrder: 2})
	if err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	desserts, err := s.CreateCategory(Category{Name: "Postres", Icon: "Cookie", SortOrder: 3})
	if err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}

	items := []Item{
		{
			Name:        "Paella Valenciana",
			Description: "Auténtica paella valenciana con pollo, conejo, judías verdes, garrofón, tomate, pimiento, azafrán y aceite de oliva.",
			Price:       18.50,
			CategoryID:  mains.ID,
			Available:   true,
			Stock:       15,
			Tags:        []string{"popular", "traditional"},
			Allergens:   []string{"gluten"},
			BranchIDs:   pick(0, 1),
		},
		{
			Name:        "Salmón a la Plancha",
			Description: "Filete de salmón fresco a la plancha con verduras de temporada y salsa de limón.",
			Price:       22.00,
			CategoryID:  fish.ID,
			Available:   true,
			Stock:       8,
			Tags:        []string{"healthy", "fish"},
			Allergens:   []string{"fish"},
			BranchIDs:   pick(0, 2),
		},
		{
			Name:        "Entrecot de Ternera",
			Description: "Jugoso entrecot de ternera a la parrilla con patatas asadas y pimientos del piquillo.",
			Price:       24.50,
			CategoryID:  meats.ID,
			Available:   true,
			Stock:       6,
			Tags:        []string{"meat", "grilled"},
			BranchIDs:   pick(0, 1, 2),
		},
		{
			Name:        "Sangría Tradicional (1L)",
			Description: "Sangría casera con vino tinto, frutas de temporada y un toque de brandy.",
			Price:       8.00,
			CategoryID:  drinks.ID,
			Available:   true,
			Stock:       30,
			Tags:        []string{"popular"},
			BranchIDs:   pick(0, 1, 2),
		},
		{
			Name:        "Crema Catalana",
			Description: "Clásica crema catalana con azúcar caramelizado.",
			Price:       6.00,
			CategoryID:  desserts.ID,
			Available:   true,
			Stock:       12,
			Allergens:   []string{"egg", "lactose"},
			BranchIDs:   pick(0),
		},
		{
			Name:        "Churros con Chocolate",
			Description: "Churros recién hechos con chocolate caliente para mojar.",
			Price:       5.50,
			CategoryID:  desserts.ID,
			Available:   false,
			Stock:       0,
			Allergens:   []string{"gluten"},
			BranchIDs:   pick(1, 2),
		},
	}

	for _, it := range items {
		if _, err := s.CreateItem(it); err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}
	}
	return nil
}
