package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/blogem/social-auth/services"
	"github.com/blogem/social-auth/userctx"
	"github.com/blogem/social-auth/websession"
)

// Authenticate attaches the caller to the request context when the request
// carries a valid bearer access token or a logged-in session.
// Requests with an invalid bearer token continue anonymously.
func Authenticate(tokens services.TokenService, logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if header := r.Header.Get("Authorization"); header != "" {
				scheme, token, _ := strings.Cut(header, " ")
				if !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
					next.ServeHTTP(w, r)
					return
				}

				claims, err := tokens.ParseAccessToken(strings.TrimSpace(token))
				if err != nil {
					logger.WithError(err).Debug("Rejected bearer token")
					next.ServeHTTP(w, r)
					return
				}

				ctx := userctx.SetUser(r.Context(), claims.UserID, claims.Email)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			sess := websession.FromRequest(r)
			if userID, ok := websession.UserID(sess); ok {
				ctx := userctx.SetUser(r.Context(), userID, websession.UserEmail(sess))
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth ensures the user is authenticated.
// It must run after Authenticate.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userctx.GetUserID(r.Context()); !ok {
			writeUnauthorized(w, "Authentication credentials were not provided")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
