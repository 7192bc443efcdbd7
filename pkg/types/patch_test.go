package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchListValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		patches PatchList
		wantErr error
	}{
		{
			name:    "valid product patch list",
			table:   TableProducts,
			patches: PatchList{{"name", "Magic Mouse 3"}, {"price", 2500000.0}, {"categoryId", int64(4)}},
		},
		{
			name:    "explicit id is a declared column",
			table:   TableUsers,
			patches: PatchList{{"id", int64(7)}, {"username", "vendor01"}},
		},
		{
			name:    "unknown table",
			table:   "invoices",
			patches: PatchList{{"name", "x"}},
			wantErr: ErrTableUnknown,
		},
		{
			name:    "unknown field fails fast",
			table:   TableOrders,
			patches: PatchList{{"status", StatusCart}, {"discount", 10}},
			wantErr: ErrUnknownField,
		},
		{
			name:    "empty patch list",
			table:   TableCategories,
			patches: nil,
			wantErr: ErrEmptyPatchList,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patches.Validate(tt.table)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPatchListHas(t *testing.T) {
	patches := PatchList{{"status", StatusCart}, {"qty", int64(1)}}
	assert.True(t, patches.Has("qty"))
	assert.False(t, patches.Has("id"))
}
