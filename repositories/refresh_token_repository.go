package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/social-auth/models"
)

// RefreshTokenRepository interface defines refresh token database operations
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByJTI(ctx context.Context, jti string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, jti string, at time.Time) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type refreshTokenRepository struct {
	db *sql.DB
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *sql.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create persists an issued refresh token
func (r *refreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (jti, user_id, issued_at, expires_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		token.JTI,
		token.UserID,
		token.IssuedAt.UTC(),
		token.ExpiresAt.UTC(),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("refresh token %q: %w", token.JTI, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}

	return nil
}

// GetByJTI retrieves a refresh token record by its token ID
func (r *refreshTokenRepository) GetByJTI(ctx context.Context, jti string) (*models.RefreshToken, error) {
	query := `
		SELECT jti, user_id, issued_at, expires_at, revoked_at
		FROM refresh_tokens
		WHERE jti = ?
	`

	var token models.RefreshToken
	var revokedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, jti).Scan(
		&token.JTI,
		&token.UserID,
		&token.IssuedAt,
		&token.ExpiresAt,
		&revokedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("refresh token %q: %w", jti, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	if revokedAt.Valid {
		token.RevokedAt = &revokedAt.Time
	}

	return &token, nil
}

// Revoke marks a token as revoked. Revoking an already revoked token
// reports ErrNotFound so rotation can detect concurrent reuse.
func (r *refreshTokenRepository) Revoke(ctx context.Context, jti string, at time.Time) error {
	query := `UPDATE refresh_tokens SET revoked_at = ? WHERE jti = ? AND revoked_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, at.UTC(), jti)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("active refresh token %q: %w", jti, ErrNotFound)
	}

	return nil
}

// DeleteExpired removes tokens that expired before the given time
func (r *refreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE expires_at < ?`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}

	return result.RowsAffected()
}
