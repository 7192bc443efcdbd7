package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/storefront/pkg/types"
)

// setupStore opens a Store against a fresh temp data dir, seeded with the
// canonical catalog, and closes it on cleanup.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Open(types.Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenSeedsCatalog(t *testing.T) {
	s := setupStore(t)

	categories, err := s.GetAll(types.TableCategories)
	require.NoError(t, err)
	assert.Len(t, categories, 4)
	assert.Equal(t, types.Category{ID: 1, Name: "Laptop"}, categories[0])

	products, err := s.GetAll(types.TableProducts)
	require.NoError(t, err)
	assert.Len(t, products, 8)
	first := products[0].(types.Product)
	assert.Equal(t, "MacBook Pro M3", first.Name)
	assert.Equal(t, float64(35000000), first.Price)
	assert.Equal(t, int64(1), first.CategoryID)

	users, err := s.GetAll(types.TableUsers)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	orders, err := s.GetAll(types.TableOrders)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}

func TestReopenIsIdempotent(t *testing.T) {
	dataDir := t.TempDir()

	s := NewStore()
	require.NoError(t, s.Open(types.Config{DataDir: dataDir}))

	// A user-created row with a non-canonical id must survive a reseed.
	require.NoError(t, s.Insert(types.TableCategories, types.PatchList{
		{Field: "id", Value: int64(50)},
		{Field: "name", Value: "Monitor"},
	}))
	// A canonical row edited away from its seed value gets refreshed.
	require.NoError(t, s.Update(1, types.TableCategories, types.PatchList{
		{Field: "name", Value: "Notebooks"},
	}))
	require.NoError(t, s.Close())

	s2 := NewStore()
	require.NoError(t, s2.Open(types.Config{DataDir: dataDir}))
	t.Cleanup(func() { s2.Close() })

	categories, err := s2.GetAll(types.TableCategories)
	require.NoError(t, err)
	assert.Len(t, categories, 5)

	byID := map[int64]string{}
	for _, c := range categories {
		cat := c.(types.Category)
		byID[cat.ID] = cat.Name
	}
	assert.Equal(t, "Laptop", byID[1], "canonical row refreshed to seed value")
	assert.Equal(t, "Monitor", byID[50], "user-created row untouched")
}

func TestOpenLifecycle(t *testing.T) {
	s := NewStore()
	dataDir := t.TempDir()
	require.NoError(t, s.Open(types.Config{DataDir: dataDir}))

	err := s.Open(types.Config{DataDir: dataDir})
	assert.ErrorIs(t, err, types.ErrAlreadyOpen)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "close is idempotent")

	_, err = s.GetAll(types.TableProducts)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestOpenRejectsBadConfig(t *testing.T) {
	s := NewStore()
	err := s.Open(types.Config{})
	require.Error(t, err)

	var initErr *types.InitError
	require.ErrorAs(t, err, &initErr)
	assert.ErrorIs(t, err, types.ErrDataDirEmpty)
}

func TestStoreFileLandsInDataDir(t *testing.T) {
	dataDir := t.TempDir()
	s := NewStore()
	require.NoError(t, s.Open(types.Config{DataDir: dataDir}))
	t.Cleanup(func() { s.Close() })

	assert.FileExists(t, filepath.Join(dataDir, storeFileName))
}
