package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogem/social-auth/models"
)

// SocialAccountRepository interface defines provider link database operations
type SocialAccountRepository interface {
	GetByProviderUID(ctx context.Context, provider, uid string) (*models.SocialAccount, error)
}

type socialAccountRepository struct {
	db *sql.DB
}

// NewSocialAccountRepository creates a new social account repository
func NewSocialAccountRepository(db *sql.DB) SocialAccountRepository {
	return &socialAccountRepository{db: db}
}

// GetByProviderUID retrieves the link for a provider subject
func (r *socialAccountRepository) GetByProviderUID(ctx context.Context, provider, uid string) (*models.SocialAccount, error) {
	query := `
		SELECT id, user_id, provider, uid, date_joined
		FROM social_accounts
		WHERE provider = ? AND uid = ?
	`

	var account models.SocialAccount
	err := r.db.QueryRowContext(ctx, query, provider, uid).Scan(
		&account.ID,
		&account.UserID,
		&account.Provider,
		&account.UID,
		&account.DateJoined,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s account %q: %w", provider, uid, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get social account: %w", err)
	}

	return &account, nil
}
