package models

import (
	"errors"
	"time"
)

// ProviderProfile is the normalized profile returned by an identity provider
// after a successful exchange. It is consumed once and never persisted.
type ProviderProfile struct {
	Provider string
	Subject  string
	Email    string
	// VerifiedEmail is nil when the provider did not say either way
	VerifiedEmail *bool
	GivenName     string
	FamilyName    string
}

// Validate checks the fields every profile must carry
func (p *ProviderProfile) Validate() error {
	if p.Provider == "" {
		return errors.New("provider is required")
	}
	if p.Subject == "" {
		return errors.New("subject is required")
	}
	if p.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

// ExplicitlyUnverified reports whether the provider stated the email is not verified.
// An absent flag is not a rejection.
func (p *ProviderProfile) ExplicitlyUnverified() bool {
	return p.VerifiedEmail != nil && !*p.VerifiedEmail
}

// SocialAccount links a user to an identity at a provider
type SocialAccount struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	Provider   string    `json:"provider" db:"provider"`
	UID        string    `json:"uid" db:"uid"`
	DateJoined time.Time `json:"date_joined" db:"date_joined"`
}
