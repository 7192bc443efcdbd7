// This file implements the generic data-access layer: get-all, insert,
// update, and delete keyed by table name and driven by patch lists. Table
// and field names only ever reach the SQL text after passing the closed-set
// validation in pkg/types, so user input cannot alter statement structure.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/dukaforge/storefront/pkg/types"
)

// GetAll returns every row of the named table in storage order. Elements are
// typed entity values (types.Category, types.Product, types.User or
// types.Order) boxed as any; callers type-assert per table.
func (s *Store) GetAll(table string) ([]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	switch table {
	case types.TableCategories:
		rows, err := s.categoriesLocked()
		return boxCategories(rows), wrapQuery(table, err)
	case types.TableProducts:
		rows, err := s.productsLocked("SELECT " + productColumns + " FROM products")
		return boxProducts(rows), wrapQuery(table, err)
	case types.TableUsers:
		rows, err := s.usersLocked("SELECT " + userColumns + " FROM users")
		return boxUsers(rows), wrapQuery(table, err)
	case types.TableOrders:
		rows, err := s.ordersLocked("SELECT " + orderColumns + " FROM orders")
		return boxOrders(rows), wrapQuery(table, err)
	default:
		return nil, &types.QueryError{Table: table, Err: types.ErrTableUnknown}
	}
}

// Insert builds and executes a single-row insert from the patch list. An
// explicit id patch is honored; otherwise the engine assigns the rowid.
// Constraint violations surface as *types.WriteError for the caller to
// interpret.
func (s *Store) Insert(table string, patches types.PatchList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := patches.Validate(table); err != nil {
		return &types.WriteError{Table: table, Err: err}
	}

	fields := make([]string, 0, len(patches))
	placeholders := make([]string, 0, len(patches))
	args := make([]any, 0, len(patches))
	for _, p := range patches {
		fields = append(fields, p.Field)
		placeholders = append(placeholders, "?")
		args = append(args, p.Value)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(fields, ", "), strings.Join(placeholders, ", "))
	if _, err := s.db.Exec(query, args...); err != nil {
		return &types.WriteError{Table: table, Err: err}
	}
	return nil
}

// Update applies the patch list to the row matching id. Matching zero rows
// is a silent no-op by contract: callers already know the id they are
// editing and pre-check existence when the distinction matters.
func (s *Store) Update(id int64, table string, patches types.PatchList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := patches.Validate(table); err != nil {
		return &types.WriteError{Table: table, Err: err}
	}

	assignments := make([]string, 0, len(patches))
	args := make([]any, 0, len(patches)+1)
	for _, p := range patches {
		assignments = append(assignments, p.Field+" = ?")
		args = append(args, p.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(assignments, ", "))
	if _, err := s.db.Exec(query, args...); err != nil {
		return &types.WriteError{Table: table, Err: err}
	}
	return nil
}

// Delete removes the row matching id. No cascades happen at this layer;
// referential policy is applied by the catalog service above. Deleting a
// nonexistent id is a no-op, not an error.
func (s *Store) Delete(id int64, table string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if !types.ValidTable(table) {
		return &types.WriteError{Table: table, Err: types.ErrTableUnknown}
	}

	if _, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id); err != nil {
		return &types.WriteError{Table: table, Err: err}
	}
	return nil
}

// wrapQuery wraps a non-nil read error in *types.QueryError.
func wrapQuery(table string, err error) error {
	if err == nil {
		return nil
	}
	return &types.QueryError{Table: table, Err: err}
}

func boxCategories(in []types.Category) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func boxProducts(in []types.Product) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func boxUsers(in []types.User) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func boxOrders(in []types.Order) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
