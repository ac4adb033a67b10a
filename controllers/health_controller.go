package controllers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/blogem/social-auth/services"
)

// HealthController reports whether the service can reach its database
type HealthController struct {
	users  services.UserService
	logger logrus.FieldLogger
}

// NewHealthController creates a new health controller
func NewHealthController(users services.UserService, logger logrus.FieldLogger) *HealthController {
	return &HealthController{users: users, logger: logger}
}

// Check handles GET /health
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	if _, err := c.users.GetUserCount(r.Context()); err != nil {
		c.logger.WithError(err).Warn("Health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
