package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/dukaforge/storefront/pkg/types"
)

// Column lists for SELECTs, matching the scan order of the helpers below.
const (
	categoryColumns = "id, name"
	productColumns  = "id, name, price, image, categoryId"
	userColumns     = "id, username, password, role"
	orderColumns    = "id, status, qty, totalPrice, productId, userId"
)

func scanCategories(rows *sql.Rows) ([]types.Category, error) {
	var out []types.Category
	for rows.Next() {
		var c types.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		out = append(out, c)
	}
	if out == nil {
		out = []types.Category{}
	}
	return out, rows.Err()
}

func scanProducts(rows *sql.Rows) ([]types.Product, error) {
	var out []types.Product
	for rows.Next() {
		var p types.Product
		var image sql.NullString
		var categoryID sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &image, &categoryID); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		p.Image = image.String
		p.CategoryID = categoryID.Int64
		out = append(out, p)
	}
	if out == nil {
		out = []types.Product{}
	}
	return out, rows.Err()
}

func scanUsers(rows *sql.Rows) ([]types.User, error) {
	var out []types.User
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Role); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		out = append(out, u)
	}
	if out == nil {
		out = []types.User{}
	}
	return out, rows.Err()
}

func scanOrders(rows *sql.Rows) ([]types.Order, error) {
	var out []types.Order
	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if out == nil {
		out = []types.Order{}
	}
	return out, rows.Err()
}

func scanOrderRow(rows *sql.Rows) (types.Order, error) {
	var o types.Order
	var total sql.NullFloat64
	if err := rows.Scan(&o.ID, &o.Status, &o.Qty, &total, &o.ProductID, &o.UserID); err != nil {
		return types.Order{}, fmt.Errorf("scanning order: %w", err)
	}
	if total.Valid {
		v := total.Float64
		o.TotalPrice = &v
	}
	return o, nil
}
