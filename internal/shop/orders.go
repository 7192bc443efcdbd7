package shop

import (
	"github.com/dukaforge/storefront/internal/sqlite"
	"github.com/dukaforge/storefront/pkg/types"
)

// Orders manages checkout and the order lifecycle after the cart.
type Orders struct {
	store *sqlite.Store
}

// NewOrders creates an Orders service.
func NewOrders(store *sqlite.Store) *Orders {
	return &Orders{store: store}
}

// Checkout prices and promotes every cart row for the user to pending,
// returning how many orders were placed. An empty cart is ErrEmptyCart.
func (o *Orders) Checkout(userID int64) (int64, error) {
	return o.store.CheckoutCart(userID)
}

// History lists the user's orders past the cart, newest first.
func (o *Orders) History(userID int64) ([]types.Order, error) {
	return o.store.OrdersByUser(userID)
}

// Get fetches a single order.
func (o *Orders) Get(orderID int64) (types.Order, bool, error) {
	return o.store.OrderByID(orderID)
}

// SetStatus moves an order along the lifecycle. Statuses advance one step
// at a time; cancelled is reachable from any non-terminal status.
func (o *Orders) SetStatus(orderID int64, to string) error {
	if !types.ValidStatus(to) {
		return types.ErrInvalidStatus
	}
	return o.store.UpdateOrderStatus(orderID, to)
}
