// This file implements the domain query layer: the specialized reads the
// screens need beyond the generic get-all, including the cross-table search
// and the cart-membership check.
package sqlite

import (
	"database/sql"

	"github.com/dukaforge/storefront/pkg/types"
)

// SearchProductsByNameOrCategory returns products whose name or category
// name contains query, case-insensitive, unranked. An empty query matches
// the full product set; callers that want a blank search box to mean "no
// search" special-case that themselves.
func (s *Store) SearchProductsByNameOrCategory(query string) ([]types.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	pattern := "%" + query + "%"
	rows, err := s.productsLocked(`
		SELECT p.id, p.name, p.price, p.image, p.categoryId
		FROM products p
		LEFT JOIN categories c ON c.id = p.categoryId
		WHERE LOWER(p.name) LIKE LOWER(?) OR LOWER(c.name) LIKE LOWER(?)`,
		pattern, pattern)
	return rows, wrapQuery(types.TableProducts, err)
}

// ProductsByCategoryID returns the products with an exact categoryId match.
// An absent category yields an empty slice, not an error.
func (s *Store) ProductsByCategoryID(categoryID int64) ([]types.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	rows, err := s.productsLocked(
		"SELECT "+productColumns+" FROM products WHERE categoryId = ?", categoryID)
	return rows, wrapQuery(types.TableProducts, err)
}

// ProductByID returns the product with the given id. The second return
// value reports whether the product exists.
func (s *Store) ProductByID(id int64) (types.Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return types.Product{}, false, err
	}

	rows, err := s.productsLocked(
		"SELECT "+productColumns+" FROM products WHERE id = ?", id)
	if err != nil {
		return types.Product{}, false, wrapQuery(types.TableProducts, err)
	}
	if len(rows) == 0 {
		return types.Product{}, false, nil
	}
	return rows[0], true, nil
}

// UserByCredentials returns the user matching both username and password
// exactly. Absence is reported through the bool, never as an error: a wrong
// password and an unknown username are indistinguishable to the caller.
func (s *Store) UserByCredentials(username, password string) (types.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return types.User{}, false, err
	}

	rows, err := s.usersLocked(
		"SELECT "+userColumns+" FROM users WHERE username = ? AND password = ?",
		username, password)
	if err != nil {
		return types.User{}, false, wrapQuery(types.TableUsers, err)
	}
	if len(rows) == 0 {
		return types.User{}, false, nil
	}
	return rows[0], true, nil
}

// UserByID returns the user with the given id.
func (s *Store) UserByID(id int64) (types.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return types.User{}, false, err
	}

	rows, err := s.usersLocked("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if err != nil {
		return types.User{}, false, wrapQuery(types.TableUsers, err)
	}
	if len(rows) == 0 {
		return types.User{}, false, nil
	}
	return rows[0], true, nil
}

// UserExists reports whether a row with the given username exists. Used
// before sign-up inserts to produce a friendly duplicate error instead of
// surfacing the unique-constraint failure.
func (s *Store) UserExists(username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return false, err
	}

	var one int
	err := s.db.QueryRow("SELECT 1 FROM users WHERE username = ?", username).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, wrapQuery(types.TableUsers, err)
	}
	return true, nil
}

// ProductInCart reports whether an order row with status cart exists for the
// (product, user) pair. The status filter is mandatory: historical non-cart
// orders for the same pair must not count.
func (s *Store) ProductInCart(productID, userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return false, err
	}
	return s.productInCartLocked(s.db, productID, userID)
}

// CartItems returns the user's cart rows joined with product name, price and
// image, the shape the cart view renders.
func (s *Store) CartItems(userID int64) ([]types.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT o.id, o.productId, p.name, p.price, p.image, o.qty
		FROM orders o
		JOIN products p ON p.id = o.productId
		WHERE o.userId = ? AND o.status = ?`,
		userID, types.StatusCart)
	if err != nil {
		return nil, wrapQuery(types.TableOrders, err)
	}
	defer rows.Close()

	var items []types.CartItem
	for rows.Next() {
		var it types.CartItem
		var image sql.NullString
		if err := rows.Scan(&it.OrderID, &it.ProductID, &it.ProductName, &it.Price, &image, &it.Qty); err != nil {
			return nil, wrapQuery(types.TableOrders, err)
		}
		it.Image = image.String
		items = append(items, it)
	}
	if items == nil {
		items = []types.CartItem{}
	}
	return items, wrapQuery(types.TableOrders, rows.Err())
}

// OrdersByUser returns the user's placed orders, newest first. Cart rows are
// excluded; they belong to the cart view.
func (s *Store) OrdersByUser(userID int64) ([]types.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	rows, err := s.ordersLocked(
		"SELECT "+orderColumns+" FROM orders WHERE userId = ? AND status != ? ORDER BY id DESC",
		userID, types.StatusCart)
	return rows, wrapQuery(types.TableOrders, err)
}

// OrderByID returns the order with the given id.
func (s *Store) OrderByID(id int64) (types.Order, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return types.Order{}, false, err
	}

	rows, err := s.ordersLocked("SELECT "+orderColumns+" FROM orders WHERE id = ?", id)
	if err != nil {
		return types.Order{}, false, wrapQuery(types.TableOrders, err)
	}
	if len(rows) == 0 {
		return types.Order{}, false, nil
	}
	return rows[0], true, nil
}

// CategoryHasProducts reports whether any product references the category.
func (s *Store) CategoryHasProducts(categoryID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return false, err
	}

	var one int
	err := s.db.QueryRow("SELECT 1 FROM products WHERE categoryId = ? LIMIT 1", categoryID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, wrapQuery(types.TableProducts, err)
	}
	return true, nil
}

// ProductHasOrders reports whether any order row references the product,
// whatever its status.
func (s *Store) ProductHasOrders(productID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return false, err
	}

	var one int
	err := s.db.QueryRow("SELECT 1 FROM orders WHERE productId = ? LIMIT 1", productID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, wrapQuery(types.TableOrders, err)
	}
	return true, nil
}

// Locked query helpers. The caller must hold mu (read or write).

func (s *Store) categoriesLocked() ([]types.Category, error) {
	rows, err := s.db.Query("SELECT " + categoryColumns + " FROM categories")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCategories(rows)
}

func (s *Store) productsLocked(query string, args ...any) ([]types.Product, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (s *Store) usersLocked(query string, args ...any) ([]types.User, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (s *Store) ordersLocked(query string, args ...any) ([]types.Order, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}
