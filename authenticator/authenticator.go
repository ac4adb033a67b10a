package authenticator

import (
	"context"

	"github.com/blogem/social-auth/models"
)

// Config holds OAuth provider configuration
type Config struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	// Name is the provider identifier stored on social accounts
	Name() string
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	// GetProfile reads the user's profile from the verified ID token, or from
	// the userinfo endpoint when the token carries only an access token
	GetProfile(ctx context.Context, token *Token) (*models.ProviderProfile, error)
}
