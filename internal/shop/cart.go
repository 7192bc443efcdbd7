// Package shop holds the storefront services layered on the store: the
// cart, the order lifecycle, and the admin catalog with its delete policy.
// The store owns the transactional SQL; this package owns validation and
// ownership checks.
package shop

import (
	"github.com/dukaforge/storefront/internal/sqlite"
	"github.com/dukaforge/storefront/pkg/types"
)

// Cart manages the rows a user has in cart status.
type Cart struct {
	store *sqlite.Store
}

// NewCart creates a Cart service.
func NewCart(store *sqlite.Store) *Cart {
	return &Cart{store: store}
}

// Add puts a product in the user's cart. The product must exist and must
// not already be in the cart; historical orders for the same product do
// not block a new cart row.
func (c *Cart) Add(userID, productID, qty int64) error {
	if qty < 1 {
		return &types.ValidationError{Field: "qty", Msg: "quantity must be at least 1"}
	}
	_, found, err := c.store.ProductByID(productID)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrNotFound
	}
	return c.store.AddCartRow(userID, productID, qty)
}

// Items lists the user's cart joined with product details.
func (c *Cart) Items(userID int64) ([]types.CartItem, error) {
	return c.store.CartItems(userID)
}

// Total sums the cart subtotals.
func (c *Cart) Total(userID int64) (float64, error) {
	items, err := c.store.CartItems(userID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total, nil
}

// UpdateQty changes the quantity on one of the user's cart rows.
func (c *Cart) UpdateQty(userID, orderID, qty int64) error {
	if qty < 1 {
		return &types.ValidationError{Field: "qty", Msg: "quantity must be at least 1"}
	}
	if err := c.ownCartRow(userID, orderID); err != nil {
		return err
	}
	return c.store.UpdateCartQty(orderID, qty)
}

// Remove drops one of the user's cart rows.
func (c *Cart) Remove(userID, orderID int64) error {
	if err := c.ownCartRow(userID, orderID); err != nil {
		return err
	}
	return c.store.RemoveCartRow(orderID)
}

// ownCartRow rejects rows that belong to another user before the store
// touches them, so one user's order id cannot be removed by another.
func (c *Cart) ownCartRow(userID, orderID int64) error {
	order, found, err := c.store.OrderByID(orderID)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrNotInCart
	}
	if order.UserID != userID {
		return types.ErrNotInCart
	}
	return nil
}
