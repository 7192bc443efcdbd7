// This file implements the transactional order/cart writes. The cart
// duplicate check and the insert run inside one transaction, as does
// checkout, so a concurrent writer cannot interleave between the check and
// the write.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/dukaforge/storefront/pkg/types"
)

// querier is the subset of *sql.DB and *sql.Tx the cart helpers need.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

// AddCartRow inserts a cart-status order row for the (product, user) pair.
// The pre-insert existence check and the insert share a transaction; an
// existing cart row returns ErrAlreadyInCart so the caller can redirect to
// the cart view instead of duplicating the line.
func (s *Store) AddCartRow(userID, productID, qty int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return &types.WriteError{Table: types.TableOrders, Err: err}
	}
	defer tx.Rollback()

	exists, err := s.productInCartLocked(tx, productID, userID)
	if err != nil {
		return err
	}
	if exists {
		return types.ErrAlreadyInCart
	}

	if _, err := tx.Exec(
		"INSERT INTO orders (status, qty, productId, userId) VALUES (?, ?, ?, ?)",
		types.StatusCart, qty, productID, userID); err != nil {
		return &types.WriteError{Table: types.TableOrders, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &types.WriteError{Table: types.TableOrders, Err: err}
	}
	return nil
}

// UpdateCartQty sets the quantity on a cart row. Returns ErrNotInCart when
// the row does not exist or is no longer in cart status.
func (s *Store) UpdateCartQty(orderID, qty int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE orders SET qty = ? WHERE id = ? AND status = ?",
		qty, orderID, types.StatusCart)
	if err != nil {
		return &types.WriteError{Table: types.TableOrders, Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &types.WriteError{Table: types.TableOrders, Err: err}
	}
	if n == 0 {
		return types.ErrNotInCart
	}
	return nil
}

// RemoveCartRow deletes a cart row. Returns ErrNotInCart when the row does
// not exist or has already moved past cart status.
func (s *Store) RemoveCartRow(orderID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"DELETE FROM orders WHERE id = ? AND status = ?", orderID, types.StatusCart)
	if err != nil {
		return &types.WriteError{Table: types.TableOrders, Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &types.WriteError{Table: types.TableOrders, Err: err}
	}
	if n == 0 {
		return types.ErrNotInCart
	}
	return nil
}

// CheckoutCart turns every cart row of the user into a pending order in one
// transaction, computing totalPrice as qty times the current product price.
// Returns the number of rows checked out; an empty cart is ErrEmptyCart.
func (s *Store) CheckoutCart(userID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, &types.WriteError{Table: types.TableOrders, Err: err}
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE orders
		SET totalPrice = qty * (SELECT price FROM products WHERE products.id = orders.productId),
		    status = ?
		WHERE userId = ? AND status = ?`,
		types.StatusPending, userID, types.StatusCart)
	if err != nil {
		return 0, &types.WriteError{Table: types.TableOrders, Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &types.WriteError{Table: types.TableOrders, Err: err}
	}
	if n == 0 {
		return 0, types.ErrEmptyCart
	}

	if err := tx.Commit(); err != nil {
		return 0, &types.WriteError{Table: types.TableOrders, Err: err}
	}
	return n, nil
}

// UpdateOrderStatus moves an order to a new status after checking the
// transition against the lifecycle rules. The read and the write share a
// transaction. Returns ErrNotFound for an unknown order and
// ErrInvalidTransition for a move the lifecycle forbids.
func (s *Store) UpdateOrderStatus(orderID int64, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if !types.ValidStatus(to) {
		return types.ErrInvalidStatus
	}

	tx, err := s.db.Begin()
	if err != nil {
		return &types.WriteError{Table: types.TableOrders, Err: err}
	}
	defer tx.Rollback()

	var from string
	err = tx.QueryRow("SELECT status FROM orders WHERE id = ?", orderID).Scan(&from)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return &types.QueryError{Table: types.TableOrders, Err: err}
	}

	if !types.CanTransition(from, to) {
		return fmt.Errorf("%s to %s: %w", from, to, types.ErrInvalidTransition)
	}

	if _, err := tx.Exec("UPDATE orders SET status = ? WHERE id = ?", to, orderID); err != nil {
		return &types.WriteError{Table: types.TableOrders, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &types.WriteError{Table: types.TableOrders, Err: err}
	}
	return nil
}

// productInCartLocked runs the cart-membership check against q, which is
// either the store handle or an open transaction. The caller must hold mu.
func (s *Store) productInCartLocked(q querier, productID, userID int64) (bool, error) {
	var one int
	err := q.QueryRow(
		"SELECT 1 FROM orders WHERE productId = ? AND userId = ? AND status = ? LIMIT 1",
		productID, userID, types.StatusCart).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, &types.QueryError{Table: types.TableOrders, Err: err}
	}
	return true, nil
}
