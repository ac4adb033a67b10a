package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/social-auth/models"
	"github.com/blogem/social-auth/repositories"
	"github.com/blogem/social-auth/services/mocks"
	"github.com/blogem/social-auth/userctx"
)

func TestProfileController_Show(t *testing.T) {
	logger, _ := test.NewNullLogger()
	user := &models.User{ID: 5, Email: "a@x.com", Username: "a", FirstName: "A", LastName: "X"}

	tests := []struct {
		name       string
		userID     int64
		setup      func(*mocks.MockUserService)
		wantStatus int
		wantBody   map[string]string
	}{
		{
			name:   "current user",
			userID: 5,
			setup: func(m *mocks.MockUserService) {
				m.EXPECT().GetUserByID(mock.Anything, int64(5)).Return(user, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: map[string]string{
				"username":   "a",
				"email":      "a@x.com",
				"first_name": "A",
				"last_name":  "X",
			},
		},
		{
			name:       "no user in context",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "user deleted",
			userID: 6,
			setup: func(m *mocks.MockUserService) {
				m.EXPECT().GetUserByID(mock.Anything, int64(6)).Return(nil, repositories.ErrNotFound)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "store failure",
			userID: 7,
			setup: func(m *mocks.MockUserService) {
				m.EXPECT().GetUserByID(mock.Anything, int64(7)).Return(nil, errors.New("locked"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mocks.NewMockUserService(t)
			if tt.setup != nil {
				tt.setup(users)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tt.userID != 0 {
				req = req.WithContext(userctx.SetUser(req.Context(), tt.userID, "a@x.com"))
			}
			w := httptest.NewRecorder()

			NewProfileController(users, logger).Show(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody == nil {
				return
			}
			var body map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestHealthController_Check(t *testing.T) {
	logger, _ := test.NewNullLogger()

	users := mocks.NewMockUserService(t)
	users.EXPECT().GetUserCount(mock.Anything).Return(3, nil).Once()
	w := httptest.NewRecorder()
	NewHealthController(users, logger).Check(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	failing := mocks.NewMockUserService(t)
	failing.EXPECT().GetUserCount(mock.Anything).Return(0, errors.New("database is closed")).Once()
	w = httptest.NewRecorder()
	NewHealthController(failing, logger).Check(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
