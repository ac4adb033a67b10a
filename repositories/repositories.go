package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	User          UserRepository
	SocialAccount SocialAccountRepository
	RefreshToken  RefreshTokenRepository
	Audit         AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		SocialAccount: NewSocialAccountRepository(db),
		RefreshToken:  NewRefreshTokenRepository(db),
		Audit:         NewAuditRepository(db),
	}
}
