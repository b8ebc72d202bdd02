package order_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/order"
)

func TestStore_GetIsIdempotent(t *testing.T) {
	store := order.NewStore()
	o := newTestOrder(order.StatusPending)
	require.NoError(t, store.Add(o))

	first, err := store.Get(o.ID)
	require.NoError(t, err)
	second, err := store.Get(o.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_SnapshotsDoNotAliasState(t *testing.T) {
	store := order.NewStore()
	o := newTestOrder(order.StatusPending)
	require.NoError(t, store.Add(o))

	snap, err := store.Get(o.ID)
	require.NoError(t, err)

	snap.Status = order.StatusCompleted
	snap.Items[0].Quantity = 99
	snap.Items[0].Modifications = append(snap.Items[0].Modifications, "extra")

	fresh, err := store.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, fresh.Status)
	assert.Equal(t, 1, fresh.Items[0].Quantity)
}

func TestStore_AddRejectsDuplicateID(t *testing.T) {
	store := order.NewStore()
	o := newTestOrder(order.StatusPending)
	require.NoError(t, store.Add(o))

	err := store.Add(o)
	assert.ErrorIs(t, err, order.ErrDuplicateOrderID)
}

func TestStore_GetUnknownOrder(t *testing.T) {
	store := order.NewStore()

	_, err := store.Get(uuid.Must(uuid.NewV4()))
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestStore_ListKeepsInsertionOrder(t *testing.T) {
	store := order.NewStore()
	require.NoError(t, order.SeedDemo(store, time.Date(2025, 7, 20, 14, 0, 0, 0, time.UTC)))

	listed := store.List()
	require.Len(t, listed, 5)
	for i, want := range []string{"ORD-2025-001", "ORD-2025-002", "ORD-2025-003", "ORD-2025-004", "ORD-2025-005"} {
		assert.Equal(t, want, listed[i].OrderNumber)
	}
	assert.Equal(t, 5, store.Len())
}
