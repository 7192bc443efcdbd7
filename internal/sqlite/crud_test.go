package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/storefront/pkg/types"
)

func TestInsertAddsExactlyOneRow(t *testing.T) {
	s := setupStore(t)

	before, err := s.GetAll(types.TableProducts)
	require.NoError(t, err)

	patches := types.PatchList{
		{Field: "name", Value: "ThinkPad X1 Carbon"},
		{Field: "price", Value: float64(30000000)},
		{Field: "image", Value: "https://img.example.com/products/thinkpad-x1.jpg"},
		{Field: "categoryId", Value: int64(1)},
	}
	require.NoError(t, s.Insert(types.TableProducts, patches))

	after, err := s.GetAll(types.TableProducts)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)

	added := after[len(after)-1].(types.Product)
	assert.Equal(t, "ThinkPad X1 Carbon", added.Name)
	assert.Equal(t, float64(30000000), added.Price)
	assert.Equal(t, int64(1), added.CategoryID)
	assert.NotZero(t, added.ID, "engine assigns the id when no id patch is given")
}

func TestInsertHonorsExplicitID(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Insert(types.TableCategories, types.PatchList{
		{Field: "id", Value: int64(42)},
		{Field: "name", Value: "Audio"},
	}))

	rows, err := s.GetAll(types.TableCategories)
	require.NoError(t, err)
	last := rows[len(rows)-1].(types.Category)
	assert.Equal(t, int64(42), last.ID)
	assert.Equal(t, "Audio", last.Name)
}

func TestInsertRejectsUnknownField(t *testing.T) {
	s := setupStore(t)

	err := s.Insert(types.TableProducts, types.PatchList{
		{Field: "name", Value: "Pixel Tablet"},
		{Field: "discount", Value: 10},
	})
	require.Error(t, err)

	var writeErr *types.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.ErrorIs(t, err, types.ErrUnknownField)
}

func TestInsertSurfacesConstraintViolation(t *testing.T) {
	s := setupStore(t)

	// Seeded user "admin" already holds the username.
	err := s.Insert(types.TableUsers, types.PatchList{
		{Field: "username", Value: "admin"},
		{Field: "password", Value: "Other1pw"},
		{Field: "role", Value: types.RoleUser},
	})
	require.Error(t, err)

	var writeErr *types.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, types.TableUsers, writeErr.Table)
}

func TestUpdateIsIdempotent(t *testing.T) {
	s := setupStore(t)

	patches := types.PatchList{
		{Field: "name", Value: "MacBook Pro M4"},
		{Field: "price", Value: float64(39000000)},
	}
	require.NoError(t, s.Update(1, types.TableProducts, patches))

	first, ok, err := s.ProductByID(1)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.Update(1, types.TableProducts, patches))

	second, ok, err := s.ProductByID(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestUpdateMissingRowIsNoOp(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Update(9999, types.TableCategories, types.PatchList{
		{Field: "name", Value: "Ghost"},
	}))

	rows, err := s.GetAll(types.TableCategories)
	require.NoError(t, err)
	for _, c := range rows {
		assert.NotEqual(t, "Ghost", c.(types.Category).Name)
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Insert(types.TableCategories, types.PatchList{
		{Field: "id", Value: int64(77)},
		{Field: "name", Value: "Wearables"},
	}))
	require.NoError(t, s.Delete(77, types.TableCategories))

	rows, err := s.GetAll(types.TableCategories)
	require.NoError(t, err)
	for _, c := range rows {
		assert.NotEqual(t, int64(77), c.(types.Category).ID)
	}

	// Deleting a nonexistent id is a no-op, not an error.
	require.NoError(t, s.Delete(9999, types.TableCategories))
}

func TestGetAllUnknownTable(t *testing.T) {
	s := setupStore(t)

	_, err := s.GetAll("invoices")
	require.Error(t, err)

	var queryErr *types.QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.ErrorIs(t, err, types.ErrTableUnknown)
}
