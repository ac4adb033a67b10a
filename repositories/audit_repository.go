package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/social-auth/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (timestamp, user_email, method, path, form_data, user_agent, ip_address, request_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		query,
		entry.Timestamp,
		entry.UserEmail,
		entry.Method,
		entry.Path,
		entry.FormData,
		entry.UserAgent,
		entry.IPAddress,
		entry.RequestID,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	entry.ID, err = result.LastInsertId()
	return err
}
