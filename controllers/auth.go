package controllers

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/blogem/social-auth/models"
	"github.com/blogem/social-auth/refreshcookie"
	"github.com/blogem/social-auth/services"
	"github.com/blogem/social-auth/websession"
)

// AuthURLs holds the URLs the auth flow points the browser at
type AuthURLs struct {
	// LoginURL starts the provider consent flow on this service
	LoginURL   string
	SuccessURL string
	FailedURL  string
	ErrorURL   string
}

// RefreshCookieStore keeps the refresh token in the browser
type RefreshCookieStore interface {
	Set(w http.ResponseWriter, refreshToken string) error
	Read(r *http.Request) (string, error)
	Clear(w http.ResponseWriter)
}

// AuthController handles the social login flow and credential endpoints
type AuthController struct {
	loginService services.SocialLoginService
	tokens       services.TokenService
	cookies      RefreshCookieStore
	urls         AuthURLs
	logger       logrus.FieldLogger
}

// NewAuthController creates a new auth controller
func NewAuthController(
	loginService services.SocialLoginService,
	tokens services.TokenService,
	cookies RefreshCookieStore,
	urls AuthURLs,
	logger logrus.FieldLogger,
) *AuthController {
	return &AuthController{
		loginService: loginService,
		tokens:       tokens,
		cookies:      cookies,
		urls:         urls,
		logger:       logger,
	}
}

// LoginURL handles GET /auth/google/login/
func (c *AuthController) LoginURL(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"login_url": c.urls.LoginURL})
}

// Login handles GET /accounts/google/login/ and redirects to the consent screen
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Generate random state
	state, err := generateRandomState()
	if err != nil {
		c.logger.WithError(err).Error("Failed to generate OAuth state")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Save the state in the session to validate in callback
	if err := websession.FromRequest(r).Set(websession.KeyOAuthState, state); err != nil {
		c.logger.WithError(err).Error("Failed to store OAuth state")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.Redirect(w, r, c.loginService.AuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles GET /auth/google/callback/.
// It always answers with a redirect to the success, failed or error URL.
func (c *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	log := c.logger.WithFields(logrus.Fields{
		"path":  r.URL.Path,
		"query": redactedQuery(r),
	})
	log.Debug("Google login callback")

	defer func() {
		if recovered := recover(); recovered != nil {
			log.WithField("panic", recovered).Error("Social login callback panicked")
			http.Redirect(w, r, c.urls.ErrorURL, http.StatusFound)
		}
	}()

	http.Redirect(w, r, c.completeLogin(w, r, log), http.StatusFound)
}

// completeLogin runs the callback and returns the redirect target
func (c *AuthController) completeLogin(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger) string {
	query := r.URL.Query()
	sess := websession.FromRequest(r)
	expectedState := websession.PopState(sess)

	if providerErr := query.Get("error"); providerErr != "" {
		log.WithFields(logrus.Fields{
			"error":             providerErr,
			"error_description": query.Get("error_description"),
		}).Info("Provider declined the login")
		return c.urls.FailedURL
	}

	state := query.Get("state")
	if expectedState == "" || subtle.ConstantTimeCompare([]byte(state), []byte(expectedState)) != 1 {
		log.Info("Callback state missing or mismatched")
		return c.urls.FailedURL
	}

	code := query.Get("code")
	if code == "" {
		log.Info("Callback without authorization code")
		return c.urls.FailedURL
	}

	result, err := c.loginService.Exchange(r.Context(), code)
	if errors.Is(err, services.ErrUnverifiedEmail) {
		return c.urls.FailedURL
	}
	if err != nil {
		log.WithError(err).Error("Social login failed")
		return c.urls.ErrorURL
	}
	if result == nil || result.User == nil {
		return c.urls.FailedURL
	}

	if err := c.establish(w, r, result); err != nil {
		log.WithError(err).WithField("user_id", result.User.ID).Error("Failed to establish session")
		return c.urls.ErrorURL
	}

	return c.urls.SuccessURL
}

// establish logs the browser session in under a new session ID and stores the refresh cookie
func (c *AuthController) establish(w http.ResponseWriter, r *http.Request, result *services.LoginResult) error {
	if err := websession.Login(w, r, result.User.ID, result.User.Email); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	if err := c.cookies.Set(w, result.Tokens.Refresh); err != nil {
		return fmt.Errorf("failed to set refresh cookie: %w", err)
	}
	return nil
}

type socialLoginRequest struct {
	AccessToken string `json:"access_token"`
	Code        string `json:"code"`
}

type socialLoginResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    *models.User `json:"user"`
}

// SocialLogin handles POST /auth/google/ with a provider code or access token
func (c *AuthController) SocialLogin(w http.ResponseWriter, r *http.Request) {
	var req socialLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var (
		result *services.LoginResult
		err    error
	)
	switch {
	case req.Code != "":
		result, err = c.loginService.Exchange(r.Context(), req.Code)
	case req.AccessToken != "":
		result, err = c.loginService.ExchangeAccessToken(r.Context(), req.AccessToken)
	default:
		writeError(w, http.StatusBadRequest, "Either code or access_token is required")
		return
	}

	switch {
	case errors.Is(err, services.ErrUnverifiedEmail):
		writeError(w, http.StatusBadRequest, "The email is not verified")
		return
	case errors.Is(err, services.ErrExchange), errors.Is(err, services.ErrInvalidProfile):
		c.logger.WithError(err).Info("Social login exchange rejected")
		writeError(w, http.StatusBadRequest, "Failed to complete login with the provider")
		return
	case err != nil:
		c.logger.WithError(err).Error("Social login failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := c.establish(w, r, result); err != nil {
		c.logger.WithError(err).WithField("user_id", result.User.ID).Error("Failed to establish session")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, socialLoginResponse{
		Access:  result.Tokens.Access,
		Refresh: result.Tokens.Refresh,
		User:    result.User,
	})
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// Refresh handles POST /auth/token/refresh/ and rotates the refresh token
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := c.presentedRefreshToken(r)
	if refreshToken == "" {
		writeError(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	pair, err := c.tokens.Refresh(r.Context(), refreshToken)
	if errors.Is(err, services.ErrInvalidToken) {
		c.cookies.Clear(w)
		writeError(w, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}
	if err != nil {
		c.logger.WithError(err).Error("Failed to refresh token")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := c.cookies.Set(w, pair.Refresh); err != nil {
		c.logger.WithError(err).Error("Failed to set refresh cookie")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// Logout handles POST /auth/logout/
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if refreshToken := c.presentedRefreshToken(r); refreshToken != "" {
		if err := c.tokens.Revoke(r.Context(), refreshToken); err != nil {
			c.logger.WithError(err).Debug("Refresh token not revoked on logout")
		}
	}

	if err := websession.Logout(websession.FromRequest(r)); err != nil {
		c.logger.WithError(err).Warn("Failed to clear session")
	}
	c.cookies.Clear(w)

	writeJSON(w, http.StatusOK, map[string]string{"detail": "Successfully logged out."})
}

// presentedRefreshToken reads the refresh token from the JSON body, falling back to the cookie
func (c *AuthController) presentedRefreshToken(r *http.Request) string {
	var req refreshRequest
	if r.Body != nil {
		// An empty or non-JSON body falls through to the cookie
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Refresh != "" {
		return req.Refresh
	}

	token, err := c.cookies.Read(r)
	if err != nil {
		if !errors.Is(err, refreshcookie.ErrNoCookie) {
			c.logger.WithError(err).Warn("Failed to read refresh cookie")
		}
		return ""
	}
	return token
}

// redactedQuery returns the callback query with the authorization code hidden
func redactedQuery(r *http.Request) string {
	query := r.URL.Query()
	if query.Has("code") {
		query.Set("code", "[REDACTED]")
	}
	return query.Encode()
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
