package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"valid with default policy", Config{DataDir: "/tmp/store"}, nil},
		{"valid with explicit policy", Config{DataDir: "/tmp/store", DeletePolicy: DeleteCascade}, nil},
		{"empty data dir", Config{}, ErrDataDirEmpty},
		{"unknown policy", Config{DataDir: "/tmp/store", DeletePolicy: "soft"}, ErrDeletePolicyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestEffectiveDeletePolicy(t *testing.T) {
	assert.Equal(t, DeleteBlock, Config{DataDir: "x"}.EffectiveDeletePolicy())
	assert.Equal(t, DeleteOrphan, Config{DataDir: "x", DeletePolicy: DeleteOrphan}.EffectiveDeletePolicy())
}
