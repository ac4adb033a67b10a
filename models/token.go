package models

import "time"

// Token types carried in the token_type claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// RefreshToken is the persisted record of an issued refresh token
type RefreshToken struct {
	JTI       string
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// IsActive reports whether the token can still be exchanged at the given time
func (t *RefreshToken) IsActive(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// TokenPair is the credential pair handed to API clients
type TokenPair struct {
	Access           string    `json:"access"`
	Refresh          string    `json:"refresh"`
	AccessExpiresAt  time.Time `json:"-"`
	RefreshExpiresAt time.Time `json:"-"`
}

// AccessClaims are the validated claims of an access token
type AccessClaims struct {
	UserID    int64
	Email     string
	JTI       string
	ExpiresAt time.Time
}
