package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/storefront/pkg/types"
)

func TestCatalogAddCategory(t *testing.T) {
	store := setupStore(t, "")
	catalog := NewCatalog(store)

	err := catalog.AddCategory(types.Category{Name: "X"})
	assert.True(t, types.IsValidation(err))

	require.NoError(t, catalog.AddCategory(types.Category{Name: "Monitors"}))

	categories, err := catalog.Categories()
	require.NoError(t, err)
	assert.Len(t, categories, 5)
}

func TestCatalogAddProduct(t *testing.T) {
	store := setupStore(t, "")
	catalog := NewCatalog(store)

	tests := []struct {
		name    string
		product types.Product
		ok      bool
	}{
		{
			name:    "short name",
			product: types.Product{Name: "LG", Price: 5000000, CategoryID: 4},
		},
		{
			name:    "price under minimum",
			product: types.Product{Name: "USB cable", Price: 500, CategoryID: 4},
		},
		{
			name:    "missing category",
			product: types.Product{Name: "LG UltraFine", Price: 9000000, CategoryID: 99},
		},
		{
			name:    "valid product",
			product: types.Product{Name: "LG UltraFine", Price: 9000000, CategoryID: 4},
			ok:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catalog.AddProduct(tt.product)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, types.IsValidation(err))
		})
	}

	products, err := catalog.Products(4)
	require.NoError(t, err)
	assert.Len(t, products, 3, "AirPods, Magic Mouse, and the new monitor")
}

func TestCatalogUpdateProduct(t *testing.T) {
	store := setupStore(t, "")
	catalog := NewCatalog(store)

	err := catalog.UpdateProduct(1, types.PatchList{{Field: "price", Value: float64(10)}})
	assert.True(t, types.IsValidation(err))

	err = catalog.UpdateProduct(1, types.PatchList{{Field: "categoryId", Value: int64(99)}})
	assert.True(t, types.IsValidation(err))

	require.NoError(t, catalog.UpdateProduct(1, types.PatchList{
		{Field: "name", Value: "MacBook Pro M4"},
		{Field: "price", Value: float64(38000000)},
	}))

	product, found, err := store.ProductByID(1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "MacBook Pro M4", product.Name)
	assert.Equal(t, float64(38000000), product.Price)
}

func TestCatalogDeletePolicyBlock(t *testing.T) {
	store := setupStore(t, types.DeleteBlock)
	catalog := NewCatalog(store)

	err := catalog.DeleteCategory(1)
	assert.ErrorIs(t, err, types.ErrCategoryInUse)

	err = catalog.DeleteProduct(1)
	assert.ErrorIs(t, err, types.ErrProductInUse)

	// A fresh, unreferenced row deletes fine.
	require.NoError(t, catalog.AddCategory(types.Category{ID: 50, Name: "Monitors"}))
	require.NoError(t, catalog.DeleteCategory(50))

	require.NoError(t, catalog.AddProduct(types.Product{ID: 50, Name: "LG UltraFine", Price: 9000000, CategoryID: 4}))
	require.NoError(t, catalog.DeleteProduct(50))
}

func TestCatalogDeletePolicyCascade(t *testing.T) {
	store := setupStore(t, types.DeleteCascade)
	catalog := NewCatalog(store)

	// Product 2 sits in the seeded cart.
	require.NoError(t, catalog.DeleteProduct(2))

	_, found, err := store.ProductByID(2)
	require.NoError(t, err)
	assert.False(t, found)

	items, err := store.CartItems(seedUserID)
	require.NoError(t, err)
	assert.Len(t, items, 1, "the cart row for the deleted product went with it")

	// Category 1 still holds product 1 and its orders.
	require.NoError(t, catalog.DeleteCategory(1))

	_, found, err = store.ProductByID(1)
	require.NoError(t, err)
	assert.False(t, found)

	orders, err := store.OrdersByUser(seedUserID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCatalogDeletePolicyOrphan(t *testing.T) {
	store := setupStore(t, types.DeleteOrphan)
	catalog := NewCatalog(store)

	require.NoError(t, catalog.DeleteProduct(1))

	_, found, err := store.ProductByID(1)
	require.NoError(t, err)
	assert.False(t, found)

	// The orders referencing product 1 survive, dangling.
	order, found, err := store.OrderByID(3)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(1), order.ProductID)
}
