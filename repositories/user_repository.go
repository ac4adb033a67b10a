package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/social-auth/models"
)

// UserRepository interface defines user database operations
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CreateWithSocialAccount(ctx context.Context, user *models.User, account *models.SocialAccount) error
	Count(ctx context.Context) (int, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, email, first_name, last_name, date_joined`

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.DateJoined,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by primary key
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by exact email match
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user with email %q: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// CreateWithSocialAccount inserts a new user and its provider link in one transaction.
// On success it sets the IDs of both and account.UserID.
func (r *userRepository) CreateWithSocialAccount(ctx context.Context, user *models.User, account *models.SocialAccount) error {
	now := time.Now().UTC()
	joined := user.DateJoined
	if joined.IsZero() {
		joined = now
	}
	linked := account.DateJoined
	if linked.IsZero() {
		linked = now
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO users (username, email, first_name, last_name, date_joined)
		VALUES (?, ?, ?, ?, ?)
	`,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		joined,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("user with email %q: %w", user.Email, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user ID: %w", err)
	}

	result, err = tx.ExecContext(ctx, `
		INSERT INTO social_accounts (user_id, provider, uid, date_joined)
		VALUES (?, ?, ?, ?)
	`,
		userID,
		account.Provider,
		account.UID,
		linked,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%s account %q: %w", account.Provider, account.UID, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create social account: %w", err)
	}

	accountID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get social account ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user: %w", err)
	}

	user.ID = userID
	user.DateJoined = joined
	account.ID = accountID
	account.UserID = userID
	account.DateJoined = linked
	return nil
}

// Count returns the total number of users
func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
