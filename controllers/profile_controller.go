package controllers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/blogem/social-auth/repositories"
	"github.com/blogem/social-auth/services"
	"github.com/blogem/social-auth/userctx"
)

// ProfileController serves the current user's profile
type ProfileController struct {
	users  services.UserService
	logger logrus.FieldLogger
}

// NewProfileController creates a new profile controller
func NewProfileController(users services.UserService, logger logrus.FieldLogger) *ProfileController {
	return &ProfileController{users: users, logger: logger}
}

// Show handles GET /api/profile
func (c *ProfileController) Show(w http.ResponseWriter, r *http.Request) {
	userID, ok := userctx.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication credentials were not provided")
		return
	}

	user, err := c.users.GetUserByID(r.Context(), userID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "User not found")
		return
	}
	if err != nil {
		c.logger.WithError(err).WithField("user_id", userID).Error("Failed to load profile")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user.Profile())
}
