// This file seeds the canonical catalog on store open. Seeding is an upsert
// by id, so reopening refreshes the sample rows to their canonical values
// without touching rows created with other ids.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/dukaforge/storefront/pkg/types"
)

// seedCategories is the fixed category catalog.
var seedCategories = []types.Category{
	{ID: 1, Name: "Laptop"},
	{ID: 2, Name: "Smartphone"},
	{ID: 3, Name: "Tablet"},
	{ID: 4, Name: "Accessories"},
}

// seedProducts is the fixed product catalog. Image values are remote URIs so
// seeded products render on fresh installs without bundled assets.
var seedProducts = []types.Product{
	{ID: 1, Name: "MacBook Pro M3", Price: 35000000, CategoryID: 1, Image: "https://img.example.com/products/macbook-pro-m3.jpg"},
	{ID: 2, Name: "iPhone 15 Pro Max", Price: 28000000, CategoryID: 2, Image: "https://img.example.com/products/iphone-15-pro-max.jpg"},
	{ID: 3, Name: "iPad Pro 12.9\"", Price: 25000000, CategoryID: 3, Image: "https://img.example.com/products/ipad-pro-129.jpg"},
	{ID: 4, Name: "AirPods Pro 2", Price: 5500000, CategoryID: 4, Image: "https://img.example.com/products/airpods-pro-2.jpg"},
	{ID: 5, Name: "Dell XPS 15", Price: 32000000, CategoryID: 1, Image: "https://img.example.com/products/dell-xps-15.jpg"},
	{ID: 6, Name: "Samsung Galaxy S24 Ultra", Price: 24000000, CategoryID: 2, Image: "https://img.example.com/products/galaxy-s24-ultra.jpg"},
	{ID: 7, Name: "Surface Pro 9", Price: 22000000, CategoryID: 3, Image: "https://img.example.com/products/surface-pro-9.jpg"},
	{ID: 8, Name: "Magic Mouse 3", Price: 2500000, CategoryID: 4, Image: "https://img.example.com/products/magic-mouse-3.jpg"},
}

// seedUsers is the fixed account set: one admin, one regular user.
// Plaintext passwords mirror the system this replaces.
var seedUsers = []types.User{
	{ID: 1, Username: "admin", Password: "123456", Role: types.RoleAdmin},
	{ID: 2, Username: "testUser", Password: "123456", Role: types.RoleUser},
}

func ptrFloat(v float64) *float64 { return &v }

// seedOrders gives the sample user two cart lines and one pending order.
var seedOrders = []types.Order{
	{ID: 1, Status: types.StatusCart, Qty: 1, ProductID: 1, UserID: 2},
	{ID: 2, Status: types.StatusCart, Qty: 1, ProductID: 2, UserID: 2},
	{ID: 3, Status: types.StatusPending, Qty: 1, TotalPrice: ptrFloat(35000000), ProductID: 1, UserID: 2},
}

// seedCatalog upserts the canonical rows inside one transaction. Each
// statement is independently idempotent, so a reseed never duplicates rows.
func seedCatalog(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range seedCategories {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO categories (id, name) VALUES (?, ?)",
			c.ID, c.Name); err != nil {
			return fmt.Errorf("seeding category %d: %w", c.ID, err)
		}
	}
	for _, p := range seedProducts {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO products (id, name, price, image, categoryId) VALUES (?, ?, ?, ?, ?)",
			p.ID, p.Name, p.Price, p.Image, p.CategoryID); err != nil {
			return fmt.Errorf("seeding product %d: %w", p.ID, err)
		}
	}
	for _, u := range seedUsers {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO users (id, username, password, role) VALUES (?, ?, ?, ?)",
			u.ID, u.Username, u.Password, u.Role); err != nil {
			return fmt.Errorf("seeding user %d: %w", u.ID, err)
		}
	}
	for _, o := range seedOrders {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO orders (id, status, qty, totalPrice, productId, userId) VALUES (?, ?, ?, ?, ?, ?)",
			o.ID, o.Status, o.Qty, o.TotalPrice, o.ProductID, o.UserID); err != nil {
			return fmt.Errorf("seeding order %d: %w", o.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}
