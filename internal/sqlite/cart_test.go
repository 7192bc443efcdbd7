package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/storefront/pkg/types"
)

func TestAddCartRow(t *testing.T) {
	s := setupStore(t)

	// Product 3 is not in user 2's seeded cart.
	require.NoError(t, s.AddCartRow(2, 3, 2))

	in, err := s.ProductInCart(3, 2)
	require.NoError(t, err)
	assert.True(t, in)

	// A second add for the same pair is refused, not duplicated.
	err = s.AddCartRow(2, 3, 1)
	assert.ErrorIs(t, err, types.ErrAlreadyInCart)

	items, err := s.CartItems(2)
	require.NoError(t, err)
	count := 0
	for _, it := range items {
		if it.ProductID == 3 {
			count++
			assert.Equal(t, int64(2), it.Qty)
		}
	}
	assert.Equal(t, 1, count)
}

func TestAddCartRowIgnoresHistoricalOrders(t *testing.T) {
	s := setupStore(t)

	// Seed order 3 is a pending order for (product 1, user 2). Move the cart
	// row for that pair out of the way, then adding to cart must succeed:
	// only cart-status rows block a new line.
	require.NoError(t, s.RemoveCartRow(1))
	require.NoError(t, s.AddCartRow(2, 1, 1))

	in, err := s.ProductInCart(1, 2)
	require.NoError(t, err)
	assert.True(t, in)
}

func TestUpdateCartQty(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.UpdateCartQty(1, 5))

	items, err := s.CartItems(2)
	require.NoError(t, err)
	for _, it := range items {
		if it.OrderID == 1 {
			assert.Equal(t, int64(5), it.Qty)
		}
	}

	// Order 3 is pending, not a cart row.
	assert.ErrorIs(t, s.UpdateCartQty(3, 2), types.ErrNotInCart)
	assert.ErrorIs(t, s.UpdateCartQty(9999, 2), types.ErrNotInCart)
}

func TestRemoveCartRow(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.RemoveCartRow(2))

	in, err := s.ProductInCart(2, 2)
	require.NoError(t, err)
	assert.False(t, in)

	assert.ErrorIs(t, s.RemoveCartRow(2), types.ErrNotInCart)
	assert.ErrorIs(t, s.RemoveCartRow(3), types.ErrNotInCart, "placed orders cannot be removed as cart rows")
}

func TestCheckoutCart(t *testing.T) {
	s := setupStore(t)

	n, err := s.CheckoutCart(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	orders, err := s.OrdersByUser(2)
	require.NoError(t, err)

	// Both former cart rows are pending now, with totals computed from the
	// current product price.
	totals := map[int64]float64{}
	for _, o := range orders {
		if o.ID == 1 || o.ID == 2 {
			assert.Equal(t, types.StatusPending, o.Status)
			require.NotNil(t, o.TotalPrice)
			totals[o.ID] = *o.TotalPrice
		}
	}
	assert.Equal(t, float64(35000000), totals[1])
	assert.Equal(t, float64(28000000), totals[2])

	items, err := s.CartItems(2)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = s.CheckoutCart(2)
	assert.ErrorIs(t, err, types.ErrEmptyCart)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := setupStore(t)

	tests := []struct {
		name    string
		orderID int64
		to      string
		wantErr error
	}{
		{"pending to confirmed", 3, types.StatusConfirmed, nil},
		{"confirmed to shipping", 3, types.StatusShipping, nil},
		{"shipping back to pending", 3, types.StatusPending, types.ErrInvalidTransition},
		{"shipping to completed", 3, types.StatusCompleted, nil},
		{"cancel after completion", 3, types.StatusCancelled, types.ErrInvalidTransition},
		{"unknown order", 9999, types.StatusConfirmed, types.ErrNotFound},
		{"unknown status", 3, "shipped", types.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.UpdateOrderStatus(tt.orderID, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			order, ok, err := s.OrderByID(tt.orderID)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.to, order.Status)
		})
	}
}
