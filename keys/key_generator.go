package keys

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Purposes of the keys derived from SECRET_KEY.
const (
	PurposeAccessTokenSigning = "access token signing key"
	PurposeCookieSigning      = "cookie signing key"
	PurposeCookieEncryption   = "cookie encryption key"
)

// KeyGenerator derives purpose-bound keys from a single secret.
type KeyGenerator struct {
	secretKeyBase []byte
}

// NewKeyGenerator returns a key generator for the hex encoded secret.
func NewKeyGenerator(secretKeyBaseHexString string) (*KeyGenerator, error) {
	secretKeyBase, err := hex.DecodeString(secretKeyBaseHexString)
	if err != nil {
		return nil, fmt.Errorf("failed to decode secret key base: %w", err)
	}
	if len(secretKeyBase) == 0 {
		return nil, fmt.Errorf("secret key base is empty")
	}
	return &KeyGenerator{secretKeyBase: secretKeyBase}, nil
}

// Generate returns a 32 byte key derived from the secret and salt.
func (g *KeyGenerator) Generate(salt string) []byte {
	return pbkdf2.Key(g.secretKeyBase, []byte(salt), 1000, 32, sha256.New)
}
