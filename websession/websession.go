// Package websession adapts the gitea session store to the keys this
// service keeps in the browser session.
package websession

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/social-auth/config"
)

// Session keys
const (
	KeyUserID     = "user_id"
	KeyUserEmail  = "user_email"
	KeyOAuthState = "oauth_state"
)

// CookieName is the name of the session cookie
const CookieName = "social_auth_session"

// Values is the subset of a session store the handlers use
type Values interface {
	Get(key interface{}) interface{}
	Set(key, value interface{}) error
	Delete(key interface{}) error
	Flush() error
}

type contextKey struct{}

// Sessioner returns the session middleware configured from cfg.
// It fails when the session provider cannot be initialized.
func Sessioner(cfg config.SessionConfig, secure bool) (func(http.Handler) http.Handler, error) {
	return session.Sessioner(session.Options{
		Provider:       cfg.Provider,
		ProviderConfig: cfg.ProviderConfig,
		CookieName:     CookieName,
		Secure:         secure,
		Gclifetime:     cfg.Lifetime,
		Maxlifetime:    cfg.Lifetime,
		SameSite:       http.SameSiteLaxMode,
	})
}

// WithValues attaches a session to ctx, taking precedence over the session middleware.
// A session attached this way must implement Regenerate() error to support Login.
func WithValues(ctx context.Context, v Values) context.Context {
	return context.WithValue(ctx, contextKey{}, v)
}

// FromRequest returns the session of the request
func FromRequest(r *http.Request) Values {
	if v, ok := r.Context().Value(contextKey{}).(Values); ok {
		return v
	}
	return session.GetSession(r)
}

type regenerator interface {
	Regenerate() error
}

// regenerate gives the request a new session ID and returns the session under it
func regenerate(w http.ResponseWriter, r *http.Request) (Values, error) {
	if v, ok := r.Context().Value(contextKey{}).(Values); ok {
		rg, ok := v.(regenerator)
		if !ok {
			return nil, errors.New("session cannot be regenerated")
		}
		return v, rg.Regenerate()
	}

	store, err := session.RegenerateSession(w, r)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Login rotates the session ID and stores the authenticated user in the new session.
// The pre-login session ID no longer refers to any user.
func Login(w http.ResponseWriter, r *http.Request, userID int64, email string) error {
	v, err := regenerate(w, r)
	if err != nil {
		return fmt.Errorf("failed to regenerate session: %w", err)
	}
	if err := v.Flush(); err != nil {
		return err
	}
	if err := v.Set(KeyUserID, userID); err != nil {
		return err
	}
	return v.Set(KeyUserEmail, email)
}

// Logout removes the user from the session
func Logout(v Values) error {
	return v.Flush()
}

// UserID returns the logged-in user ID, if any
func UserID(v Values) (int64, bool) {
	switch id := v.Get(KeyUserID).(type) {
	case int64:
		return id, true
	case int:
		return int64(id), true
	default:
		return 0, false
	}
}

// UserEmail returns the logged-in user's email, if any
func UserEmail(v Values) string {
	email, _ := v.Get(KeyUserEmail).(string)
	return email
}

// PopState returns the stored OAuth state and removes it from the session
func PopState(v Values) string {
	state, _ := v.Get(KeyOAuthState).(string)
	if state != "" {
		_ = v.Delete(KeyOAuthState)
	}
	return state
}
