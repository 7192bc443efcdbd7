package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/storefront/pkg/types"
)

func productNames(products []types.Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}

func TestSearchProductsByNameOrCategory(t *testing.T) {
	s := setupStore(t)

	tests := []struct {
		name  string
		query string
		check func(t *testing.T, got []types.Product)
	}{
		{
			name:  "empty query returns the full product set",
			query: "",
			check: func(t *testing.T, got []types.Product) {
				all, err := s.GetAll(types.TableProducts)
				require.NoError(t, err)
				assert.Len(t, got, len(all))
			},
		},
		{
			name:  "match on product name is case-insensitive",
			query: "macbook",
			check: func(t *testing.T, got []types.Product) {
				require.Len(t, got, 1)
				assert.Equal(t, "MacBook Pro M3", got[0].Name)
			},
		},
		{
			name:  "exact category name returns the whole category",
			query: "Laptop",
			check: func(t *testing.T, got []types.Product) {
				assert.ElementsMatch(t,
					[]string{"MacBook Pro M3", "Dell XPS 15"},
					productNames(got))
			},
		},
		{
			name:  "category substring matches too",
			query: "phone",
			check: func(t *testing.T, got []types.Product) {
				// "Smartphone" category plus the iPhone name match.
				assert.ElementsMatch(t,
					[]string{"iPhone 15 Pro Max", "Samsung Galaxy S24 Ultra"},
					productNames(got))
			},
		},
		{
			name:  "no match yields empty, not error",
			query: "zzz-not-a-product",
			check: func(t *testing.T, got []types.Product) {
				assert.Empty(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.SearchProductsByNameOrCategory(tt.query)
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestProductsByCategoryID(t *testing.T) {
	s := setupStore(t)

	laptops, err := s.ProductsByCategoryID(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"MacBook Pro M3", "Dell XPS 15"}, productNames(laptops))

	none, err := s.ProductsByCategoryID(99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserByCredentials(t *testing.T) {
	s := setupStore(t)

	tests := []struct {
		name     string
		username string
		password string
		found    bool
	}{
		{"seeded admin matches", "admin", "123456", true},
		{"wrong password is absent", "admin", "wrong", false},
		{"unknown username is absent", "nobody", "123456", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, found, err := s.UserByCredentials(tt.username, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.username, user.Username)
			}
		})
	}
}

func TestUserExists(t *testing.T) {
	s := setupStore(t)

	exists, err := s.UserExists("admin")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.UserExists("nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProductInCartFiltersByStatus(t *testing.T) {
	s := setupStore(t)

	// Seed order 3 is a pending order for (product 1, user 2); seed order 1
	// is the cart row for the same pair.
	in, err := s.ProductInCart(1, 2)
	require.NoError(t, err)
	assert.True(t, in)

	// Move the cart row away from cart status; the pending order for the
	// same pair must not count.
	require.NoError(t, s.UpdateOrderStatus(1, types.StatusPending))

	in, err = s.ProductInCart(1, 2)
	require.NoError(t, err)
	assert.False(t, in)
}

func TestCartItemsJoinsProducts(t *testing.T) {
	s := setupStore(t)

	items, err := s.CartItems(2)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byProduct := map[int64]types.CartItem{}
	for _, it := range items {
		byProduct[it.ProductID] = it
	}
	mac := byProduct[1]
	assert.Equal(t, "MacBook Pro M3", mac.ProductName)
	assert.Equal(t, float64(35000000), mac.Price)
	assert.Equal(t, int64(1), mac.Qty)
	assert.Equal(t, float64(35000000), mac.Subtotal())
}

func TestOrdersByUserExcludesCart(t *testing.T) {
	s := setupStore(t)

	orders, err := s.OrdersByUser(2)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, types.StatusPending, orders[0].Status)
}

func TestReferenceChecks(t *testing.T) {
	s := setupStore(t)

	has, err := s.CategoryHasProducts(1)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = s.CategoryHasProducts(999)
	require.NoError(t, err)
	assert.False(t, has)

	has, err = s.ProductHasOrders(1)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = s.ProductHasOrders(8)
	require.NoError(t, err)
	assert.False(t, has)
}
