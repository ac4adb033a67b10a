package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/blogem/social-auth/models"
	"github.com/blogem/social-auth/repositories"
	"github.com/blogem/social-auth/userctx"
)

const (
	redacted = "[REDACTED]"
	// maxAuditBody caps how much of a request body is captured
	maxAuditBody = 64 << 10
)

// sensitiveFields are never written to the audit log
var sensitiveFields = map[string]bool{
	"access_token":  true,
	"code":          true,
	"id_token":      true,
	"refresh":       true,
	"refresh_token": true,
	"password":      true,
}

// AuditLogger middleware logs all POST/PUT/DELETE requests
func AuditLogger(auditRepo repositories.AuditRepository, logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
				// Create audit log entry
				entry := &models.AuditLogEntry{
					UserEmail: userctx.GetUserEmail(r.Context()),
					Method:    r.Method,
					Path:      r.URL.Path,
					UserAgent: r.UserAgent(),
					IPAddress: getIPAddress(r),
					FormData:  captureFormData(r),
					RequestID: chimiddleware.GetReqID(r.Context()),
				}

				// Log asynchronously to avoid blocking request
				ctx := context.WithoutCancel(r.Context())
				go func() {
					if err := auditRepo.Create(ctx, entry); err != nil {
						logger.WithError(err).WithField("path", entry.Path).Error("Failed to create audit log")
					}
				}()
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// captureFormData captures the JSON or form body as a JSON string with secrets redacted.
// The request body is restored for the next handler.
func captureFormData(r *http.Request) string {
	formMap := make(map[string]interface{})

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if r.Body == nil {
			return ""
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, maxAuditBody))
		if err != nil {
			return ""
		}
		r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), r.Body))

		if err := json.Unmarshal(body, &formMap); err != nil {
			return ""
		}
	} else {
		// Parse form data
		if err := r.ParseForm(); err != nil {
			return ""
		}

		// Convert to map
		for key, values := range r.Form {
			if len(values) == 1 {
				formMap[key] = values[0]
			} else {
				formMap[key] = values
			}
		}
	}

	for key := range formMap {
		if sensitiveFields[strings.ToLower(key)] {
			formMap[key] = redacted
		}
	}

	if len(formMap) == 0 {
		return ""
	}

	// Convert to JSON
	jsonData, err := json.Marshal(formMap)
	if err != nil {
		return ""
	}

	return string(jsonData)
}
