// Package refreshcookie stores the refresh token in an encrypted HttpOnly cookie.
package refreshcookie

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/blogem/social-auth/keys"
)

// CookieName is the name of the refresh token cookie
const CookieName = "_social_auth_refresh"

// ErrNoCookie is returned when the request carries no usable refresh cookie
var ErrNoCookie = errors.New("refresh cookie not present")

// Store reads and writes the refresh token cookie
type Store struct {
	maxAge       time.Duration
	secure       bool
	secureCookie *securecookie.SecureCookie
}

// NewStore returns a cookie store keyed from keyGenerator
func NewStore(keyGenerator *keys.KeyGenerator, maxAge time.Duration, secure bool) *Store {
	hashKey := keyGenerator.Generate(keys.PurposeCookieSigning)
	blockKey := keyGenerator.Generate(keys.PurposeCookieEncryption)
	secureCookie := securecookie.New(hashKey, blockKey)
	secureCookie.MaxAge(int(maxAge.Seconds()))
	secureCookie.SetSerializer(securecookie.JSONEncoder{})
	return &Store{maxAge: maxAge, secure: secure, secureCookie: secureCookie}
}

// Set writes the refresh token to the response
func (s *Store) Set(w http.ResponseWriter, refreshToken string) error {
	value, err := s.secureCookie.Encode(CookieName, refreshToken)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		Expires:  time.Now().Add(s.maxAge),
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read returns the refresh token carried by the request.
// Tampered or expired cookies are reported as ErrNoCookie.
func (s *Store) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", ErrNoCookie
	}

	var refreshToken string
	err = s.secureCookie.Decode(CookieName, cookie.Value, &refreshToken)
	if err, ok := err.(securecookie.Error); ok && err.IsDecode() {
		return "", ErrNoCookie
	} else if err != nil {
		return "", err
	}

	if refreshToken == "" {
		return "", ErrNoCookie
	}
	return refreshToken, nil
}

// Clear expires the cookie in the browser
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
