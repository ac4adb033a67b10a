package models

import "time"

// AuditLogEntry records a mutating API request
type AuditLogEntry struct {
	ID        int64
	Timestamp time.Time
	UserEmail string
	Method    string
	Path      string
	// FormData is the JSON encoded form with credential fields redacted
	FormData  string
	UserAgent string
	IPAddress string
	RequestID string
}
