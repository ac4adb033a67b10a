package services

import "errors"

var (
	// ErrUnverifiedEmail rejects a login whose provider states the email is not verified
	ErrUnverifiedEmail = errors.New("the email is not verified")
	// ErrPersistence wraps failures of the underlying store
	ErrPersistence = errors.New("persistence failure")
	// ErrExchange wraps failures talking to the identity provider
	ErrExchange = errors.New("provider exchange failed")
	// ErrInvalidToken is returned for malformed, expired, revoked or unknown tokens
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidProfile is returned when a provider profile lacks required fields
	ErrInvalidProfile = errors.New("invalid provider profile")
)
