package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/storefront/pkg/types"
)

func TestOrdersCheckout(t *testing.T) {
	store := setupStore(t, "")
	orders := NewOrders(store)

	placed, err := orders.Checkout(seedUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), placed)

	history, err := orders.History(seedUserID)
	require.NoError(t, err)
	assert.Len(t, history, 3, "two checked-out orders plus the seeded pending one")
	for _, order := range history {
		assert.Equal(t, types.StatusPending, order.Status)
		require.NotNil(t, order.TotalPrice)
		assert.Positive(t, *order.TotalPrice)
	}

	_, err = orders.Checkout(seedUserID)
	assert.ErrorIs(t, err, types.ErrEmptyCart)
}

func TestOrdersSetStatus(t *testing.T) {
	store := setupStore(t, "")
	orders := NewOrders(store)

	err := orders.SetStatus(3, "archived")
	assert.ErrorIs(t, err, types.ErrInvalidStatus)

	err = orders.SetStatus(3, types.StatusCompleted)
	assert.ErrorIs(t, err, types.ErrInvalidTransition, "statuses advance one step at a time")

	require.NoError(t, orders.SetStatus(3, types.StatusConfirmed))
	require.NoError(t, orders.SetStatus(3, types.StatusShipping))
	require.NoError(t, orders.SetStatus(3, types.StatusCancelled))

	err = orders.SetStatus(3, types.StatusCompleted)
	assert.ErrorIs(t, err, types.ErrInvalidTransition, "cancelled is terminal")

	order, found, err := orders.Get(3)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, types.StatusCancelled, order.Status)
}
