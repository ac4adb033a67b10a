package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/blogem/social-auth/database"
	"github.com/blogem/social-auth/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Create a temporary database for testing
	dbPath := filepath.Join(t.TempDir(), "test.db")
	logger, _ := test.NewNullLogger()

	// Initialize test database using the actual migration system
	db, err := database.InitializeDatabase(dbPath, logger)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func createTestUser(t *testing.T, repo UserRepository, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:  models.UsernameFromEmail(email),
		Email:     email,
		FirstName: "Jane",
		LastName:  "Doe",
	}
	account := &models.SocialAccount{Provider: "google", UID: "sub-" + email}
	if err := repo.CreateWithSocialAccount(context.Background(), user, account); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	// Test Create
	user := createTestUser(t, repo, "jane@example.com")
	if user.ID == 0 {
		t.Error("Expected user ID to be set after creation")
	}
	if user.DateJoined.IsZero() {
		t.Error("Expected date joined to be set after creation")
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to get user by ID: %v", err)
	}
	if retrieved.Email != user.Email || retrieved.Username != "jane" {
		t.Errorf("Unexpected user retrieved: %+v", retrieved)
	}
	if retrieved.FirstName != "Jane" || retrieved.LastName != "Doe" {
		t.Errorf("Expected names to round-trip, got %q %q", retrieved.FirstName, retrieved.LastName)
	}

	// Test GetByEmail
	byEmail, err := repo.GetByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("Failed to get user by email: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("Expected ID %d, got %d", user.ID, byEmail.ID)
	}

	// Email match is exact
	if _, err := repo.GetByEmail(ctx, "JANE@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for differently cased email, got %v", err)
	}

	// Test missing user
	if _, err := repo.GetByID(ctx, user.ID+100); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	// Usernames may repeat, emails may not
	createTestUser(t, repo, "jane@other.org")
	duplicate := &models.User{Username: "jane", Email: "jane@example.com"}
	if err := repo.CreateWithSocialAccount(ctx, duplicate, &models.SocialAccount{Provider: "google", UID: "fresh"}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}

	// Test Count
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}
}

func TestSocialAccountRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepository(db)
	repo := NewSocialAccountRepository(db)

	user := &models.User{Username: "jane", Email: "jane@example.com"}
	account := &models.SocialAccount{Provider: "google", UID: "1234567890"}
	if err := users.CreateWithSocialAccount(ctx, user, account); err != nil {
		t.Fatalf("Failed to create user with social account: %v", err)
	}
	if account.ID == 0 || account.UserID != user.ID {
		t.Errorf("Expected account to be linked to user %d, got %+v", user.ID, account)
	}

	retrieved, err := repo.GetByProviderUID(ctx, "google", "1234567890")
	if err != nil {
		t.Fatalf("Failed to get social account: %v", err)
	}
	if retrieved.UserID != user.ID {
		t.Errorf("Expected user ID %d, got %d", user.ID, retrieved.UserID)
	}

	// Same subject at another provider is a different identity
	if _, err := repo.GetByProviderUID(ctx, "github", "1234567890"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_CreateWithSocialAccountRollsBack(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepository(db)

	createTestUser(t, users, "jane@example.com")

	// (provider, uid) is unique, so the link insert fails after the user insert
	user := &models.User{Username: "john", Email: "john@example.com"}
	account := &models.SocialAccount{Provider: "google", UID: "sub-jane@example.com"}
	if err := users.CreateWithSocialAccount(ctx, user, account); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Expected ErrDuplicate, got %v", err)
	}
	if user.ID != 0 || account.ID != 0 {
		t.Errorf("Expected IDs to stay unset, got user %d account %d", user.ID, account.ID)
	}

	if _, err := users.GetByEmail(ctx, "john@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected the user insert to be rolled back, got %v", err)
	}

	var links int
	if err := db.QueryRow(`SELECT COUNT(*) FROM social_accounts`).Scan(&links); err != nil {
		t.Fatalf("Failed to count social accounts: %v", err)
	}
	if links != 1 {
		t.Errorf("Expected 1 social account, got %d", links)
	}
}

func TestRefreshTokenRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepository(db)
	repo := NewRefreshTokenRepository(db)

	user := createTestUser(t, users, "jane@example.com")
	now := time.Now().UTC().Truncate(time.Second)

	active := &models.RefreshToken{JTI: "active", UserID: user.ID, IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
	expired := &models.RefreshToken{JTI: "expired", UserID: user.ID, IssuedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}

	for _, token := range []*models.RefreshToken{active, expired} {
		if err := repo.Create(ctx, token); err != nil {
			t.Fatalf("Failed to create refresh token: %v", err)
		}
	}

	retrieved, err := repo.GetByJTI(ctx, "active")
	if err != nil {
		t.Fatalf("Failed to get refresh token: %v", err)
	}
	if !retrieved.ExpiresAt.Equal(active.ExpiresAt) {
		t.Errorf("Expected expiry %v, got %v", active.ExpiresAt, retrieved.ExpiresAt)
	}
	if !retrieved.IsActive(now) {
		t.Error("Expected token to be active")
	}

	// Test Revoke
	if err := repo.Revoke(ctx, "active", now); err != nil {
		t.Fatalf("Failed to revoke refresh token: %v", err)
	}
	if err := repo.Revoke(ctx, "active", now); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second revoke, got %v", err)
	}

	revoked, err := repo.GetByJTI(ctx, "active")
	if err != nil {
		t.Fatalf("Failed to get revoked token: %v", err)
	}
	if revoked.RevokedAt == nil {
		t.Error("Expected revoked_at to be set")
	}

	// Test DeleteExpired
	deleted, err := repo.DeleteExpired(ctx, now)
	if err != nil {
		t.Fatalf("Failed to delete expired tokens: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 deleted token, got %d", deleted)
	}
	if _, err := repo.GetByJTI(ctx, "expired"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for deleted token, got %v", err)
	}
}

func TestAuditRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)

	entry := &models.AuditLogEntry{
		UserEmail: "jane@example.com",
		Method:    "POST",
		Path:      "/auth/google/",
		FormData:  `{"code":"[REDACTED]"}`,
		RequestID: "req-1",
	}
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("Failed to create audit log entry: %v", err)
	}
	if entry.ID == 0 {
		t.Error("Expected entry ID to be set after creation")
	}

	var formData string
	if err := db.QueryRow(`SELECT form_data FROM audit_log WHERE id = ?`, entry.ID).Scan(&formData); err != nil {
		t.Fatalf("Failed to read audit log entry: %v", err)
	}
	if formData != entry.FormData {
		t.Errorf("Expected form data %s, got %s", entry.FormData, formData)
	}
}
