package authenticator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/blogem/social-auth/models"
)

// GoogleProviderName is the provider identifier of Google accounts
const GoogleProviderName = "google"

// GoogleProvider implements the Provider interface for Google sign-in
type GoogleProvider struct {
	provider *oidc.Provider
	verifier *oidc.IDTokenVerifier
	config   oauth2.Config
}

// NewGoogleProvider discovers the issuer and creates a Google provider
func NewGoogleProvider(ctx context.Context, cfg Config) (Provider, error) {
	// Validate required configuration
	if cfg.IssuerURL == "" {
		return nil, errors.New("issuer URL is required")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover provider %s: %w", cfg.IssuerURL, err)
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{oidc.ScopeOpenID, "profile", "email"}
	}

	conf := oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       scopes,
	}

	return &GoogleProvider{
		provider: provider,
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		config:   conf,
	}, nil
}

// Name returns the provider identifier
func (p *GoogleProvider) Name() string {
	return GoogleProviderName
}

// GetAuthURL returns the authorization URL for the consent screen
func (p *GoogleProvider) GetAuthURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// ExchangeCode exchanges an authorization code for tokens
func (p *GoogleProvider) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	oauth2Token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	// Convert oauth2.Token to our Token type
	token := &Token{
		AccessToken:  oauth2Token.AccessToken,
		RefreshToken: oauth2Token.RefreshToken,
		Expiry:       oauth2Token.Expiry.Unix(),
	}

	// Extract ID token if present
	if idToken, ok := oauth2Token.Extra("id_token").(string); ok {
		token.IDToken = idToken
	}

	return token, nil
}

// googleClaims covers both the ID token and the userinfo payloads
type googleClaims struct {
	Subject string `json:"sub"`
	// ID is the subject in the legacy v2 userinfo payload
	ID            string       `json:"id"`
	Email         string       `json:"email"`
	VerifiedEmail optionalBool `json:"verified_email"`
	EmailVerified optionalBool `json:"email_verified"`
	GivenName     string       `json:"given_name"`
	FamilyName    string       `json:"family_name"`
}

// GetProfile returns the normalized profile of the token's owner
func (p *GoogleProvider) GetProfile(ctx context.Context, token *Token) (*models.ProviderProfile, error) {
	var claims googleClaims

	switch {
	case token.IDToken != "":
		idToken, err := p.verifier.Verify(ctx, token.IDToken)
		if err != nil {
			return nil, fmt.Errorf("failed to verify ID token: %w", err)
		}
		if err := idToken.Claims(&claims); err != nil {
			return nil, fmt.Errorf("failed to parse ID token claims: %w", err)
		}
	case token.AccessToken != "":
		userInfo, err := p.provider.UserInfo(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token.AccessToken,
			TokenType:   "Bearer",
		}))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch user info: %w", err)
		}
		if err := userInfo.Claims(&claims); err != nil {
			return nil, fmt.Errorf("failed to parse user info: %w", err)
		}
	default:
		return nil, errors.New("token carries neither an ID token nor an access token")
	}

	profile := claims.profile()
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("incomplete google profile: %w", err)
	}
	return profile, nil
}

func (c *googleClaims) profile() *models.ProviderProfile {
	subject := c.Subject
	if subject == "" {
		subject = c.ID
	}

	// verified_email wins when both spellings are present
	verified := c.VerifiedEmail.value
	if verified == nil {
		verified = c.EmailVerified.value
	}

	return &models.ProviderProfile{
		Provider:      GoogleProviderName,
		Subject:       subject,
		Email:         c.Email,
		VerifiedEmail: verified,
		GivenName:     c.GivenName,
		FamilyName:    c.FamilyName,
	}
}

// optionalBool decodes a boolean that may be absent or sent as a string
type optionalBool struct {
	value *bool
}

func (b *optionalBool) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		b.value = nil
	case bool:
		b.value = &v
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", v, err)
		}
		b.value = &parsed
	default:
		return fmt.Errorf("invalid boolean %s", string(data))
	}
	return nil
}
