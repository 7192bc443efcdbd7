// Cascading deletes for the catalog service's cascade policy. The generic
// Delete never cascades; these run the dependent deletes and the target
// delete inside one transaction.
package sqlite

import "github.com/dukaforge/storefront/pkg/types"

// DeleteProductCascade removes a product together with every order row that
// references it.
func (s *Store) DeleteProductCascade(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return &types.WriteError{Table: types.TableProducts, Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM orders WHERE productId = ?", productID); err != nil {
		return &types.WriteError{Table: types.TableOrders, Err: err}
	}
	if _, err := tx.Exec("DELETE FROM products WHERE id = ?", productID); err != nil {
		return &types.WriteError{Table: types.TableProducts, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &types.WriteError{Table: types.TableProducts, Err: err}
	}
	return nil
}

// DeleteCategoryCascade removes a category, its products, and the order rows
// referencing those products.
func (s *Store) DeleteCategoryCascade(categoryID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return &types.WriteError{Table: types.TableCategories, Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM orders WHERE productId IN (SELECT id FROM products WHERE categoryId = ?)",
		categoryID); err != nil {
		return &types.WriteError{Table: types.TableOrders, Err: err}
	}
	if _, err := tx.Exec("DELETE FROM products WHERE categoryId = ?", categoryID); err != nil {
		return &types.WriteError{Table: types.TableProducts, Err: err}
	}
	if _, err := tx.Exec("DELETE FROM categories WHERE id = ?", categoryID); err != nil {
		return &types.WriteError{Table: types.TableCategories, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &types.WriteError{Table: types.TableCategories, Err: err}
	}
	return nil
}
