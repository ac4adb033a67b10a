package keys

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyGenerator(t *testing.T) {
	tests := []struct {
		name                   string
		secretKeyBaseHexString string
		wantErr                bool
	}{
		{
			name:                   "not a hex string",
			secretKeyBaseHexString: "not a hex string",
			wantErr:                true,
		},
		{
			name:                   "empty string",
			secretKeyBaseHexString: "",
			wantErr:                true,
		},
		{
			name:                   "hex string",
			secretKeyBaseHexString: hex.EncodeToString([]byte("secret key base")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKeyGenerator(tt.secretKeyBaseHexString)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestKeyGenerator_Generate(t *testing.T) {
	g, err := NewKeyGenerator(hex.EncodeToString([]byte("secret key base")))
	require.NoError(t, err)

	want := []byte{
		167, 154, 42, 17, 203, 187, 100, 107, 156, 248,
		170, 172, 191, 5, 205, 234, 146, 101, 93, 207,
		96, 51, 203, 160, 111, 119, 82, 52, 45, 193,
		135, 67,
	}
	assert.Equal(t, want, g.Generate("salt"))
}

func TestKeyGenerator_PurposesDiffer(t *testing.T) {
	g, err := NewKeyGenerator(hex.EncodeToString([]byte("secret key base")))
	require.NoError(t, err)

	signing := g.Generate(PurposeCookieSigning)
	encryption := g.Generate(PurposeCookieEncryption)

	assert.Len(t, signing, 32)
	assert.NotEqual(t, signing, encryption)
	assert.NotEqual(t, signing, g.Generate(PurposeAccessTokenSigning))
}
