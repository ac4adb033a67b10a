package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/blogem/social-auth/services"
)

// writeJSON renders v as a JSON response with the provided status code
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// writeError renders an {"error": message} response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// Controllers holds all controller instances
type Controllers struct {
	Auth    *AuthController
	Profile *ProfileController
	Health  *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(
	services *services.Services,
	urls AuthURLs,
	cookies RefreshCookieStore,
	logger logrus.FieldLogger,
) *Controllers {
	return &Controllers{
		Auth:    NewAuthController(services.SocialLogin, services.Tokens, cookies, urls, logger),
		Profile: NewProfileController(services.Users, logger),
		Health:  NewHealthController(services.Users, logger),
	}
}
