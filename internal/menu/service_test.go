package menu_test

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/menu"
)

func seededService(t *testing.T) (*menu.Service, []uuid.UUID) {
	t.Helper()
	branches := []uuid.UUID{
		uuid.Must(uuid.NewV4()),
		uuid.Must(uuid.NewV4()),
		uuid.Must(uuid.NewV4()),
	}
	svc := menu.NewService()
	require.NoError(t, svc.SeedDemo(branches))
	return svc, branches
}

func categoryByName(t *testing.T, svc *menu.Service, name string) menu.Category {
	t.Helper()
	for _, c := range svc.Categories() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("category %q not found", name)
	return menu.Category{}
}

func TestService_CategoriesOrdering(t *testing.T) {
	svc, _ := seededService(t)

	cats := svc.Categories()
	require.Len(t, cats, 5)
	// Top-level first, by sort order.
	assert.Equal(t, "Platos Principales", cats[0].Name)
	assert.Equal(t, "Bebidas", cats[1].Name)
	assert.Equal(t, "Postres", cats[2].Name)
	// Then subcategories.
	assert.Equal(t, "Carnes", cats[3].Name)
	assert.Equal(t, "Pescados", cats[4].Name)
}

func TestService_ListItems(t *testing.T) {
	svc, branches := seededService(t)
	mains := categoryByName(t, svc, "Platos Principales")
	desserts := categoryByName(t, svc, "Postres")

	tests := []struct {
		name      string
		filter    menu.Filter
		wantNames []string
	}{
		{
			name:      "search_case_insensitive",
			filter:    menu.Filter{Search: "paella"},
			wantNames: []string{"Paella Valenciana"},
		},
		{
			name:      "category_includes_subcategories",
			filter:    menu.Filter{CategoryID: mains.ID},
			wantNames: []string{"Entrecot de Ternera", "Paella Valenciana", "Salmón a la Plancha"},
		},
		{
			name:      "only_available",
			filter:    menu.Filter{CategoryID: desserts.ID, OnlyAvailable: true},
			wantNames: []string{"Crema Catalana"},
		},
		{
			name:      "by_branch",
			filter:    menu.Filter{BranchID: branches[0], CategoryID: desserts.ID},
			wantNames: []string{"Crema Catalana"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ListItems(tt.filter)
			names := make([]string, 0, len(got))
			for _, it := range got {
				names = append(names, it.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestService_ItemCRUD(t *testing.T) {
	svc, _ := seededService(t)
	drinks := categoryByName(t, svc, "Bebidas")

	created, err := svc.CreateItem(menu.Item{Name: "Café Cortado", Price: 1.80, CategoryID: drinks.ID, Available: true})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	created.Price = 2.00
	updated, err := svc.UpdateItem(*created)
	require.NoError(t, err)
	assert.Equal(t, 2.00, updated.Price)

	require.NoError(t, svc.DeleteItem(created.ID))
	_, err = svc.GetItem(created.ID)
	assert.ErrorIs(t, err, menu.ErrItemNotFound)
}

func TestService_CreateItem_Validation(t *testing.T) {
	svc, _ := seededService(t)
	drinks := categoryByName(t, svc, "Bebidas")

	_, err := svc.CreateItem(menu.Item{Name: "Agua", Price: -1, CategoryID: drinks.ID})
	assert.ErrorIs(t, err, menu.ErrInvalidPrice)

	_, err = svc.CreateItem(menu.Item{Name: "Agua", Price: 1.20, CategoryID: uuid.Must(uuid.NewV4())})
	assert.ErrorIs(t, err, menu.ErrCategoryNotFound)
}

func TestService_Duplicate(t *testing.T) {
	svc, _ := seededService(t)
	src := svc.ListItems(menu.Filter{Search: "Paella"})[0]

	dup, err := svc.Duplicate(src.ID)
	require.NoError(t, err)
	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, "Paella Valenciana (Copia)", dup.Name)
	assert.Equal(t, src.Price, dup.Price)
}

func TestService_SetAvailability(t *testing.T) {
	svc, _ := seededService(t)
	items := svc.ListItems(menu.Filter{})
	ids := []uuid.UUID{items[0].ID, items[1].ID, uuid.Must(uuid.NewV4())}

	updated, err := svc.SetAvailability(ids, false)
	require.NoError(t, err)
	// The unknown id is skipped, not an error.
	assert.Equal(t, 2, updated)

	for _, id := range ids[:2] {
		it, err := svc.GetItem(id)
		require.NoError(t, err)
		assert.False(t, it.Available)
	}
}

func TestService_DeleteCategory_RefusesNonEmpty(t *testing.T) {
	svc, _ := seededService(t)
	mains := categoryByName(t, svc, "Platos Principales")

	err := svc.DeleteCategory(mains.ID)
	assert.ErrorIs(t, err, menu.ErrCategoryNotEmpty)

	empty, err := svc.CreateCategory(menu.Category{Name: "Temporada", SortOrder: 9})
	require.NoError(t, err)
	assert.NoError(t, svc.DeleteCategory(empty.ID))
}
