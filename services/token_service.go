package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/blogem/social-auth/models"
	"github.com/blogem/social-auth/repositories"
)

// TokenService issues and validates the application's own credentials
type TokenService interface {
	IssueForUser(ctx context.Context, user *models.User) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	ParseAccessToken(accessToken string) (*models.AccessClaims, error)
	Revoke(ctx context.Context, refreshToken string) error
	PruneExpired(ctx context.Context) (int64, error)
}

// TokenServiceConfig configures token signing and lifetimes
type TokenServiceConfig struct {
	Issuer     string
	SigningKey []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type tokenClaims struct {
	TokenType string `json:"token_type"`
	UserID    int64  `json:"user_id"`
	Email     string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type tokenService struct {
	cfg              TokenServiceConfig
	refreshTokenRepo repositories.RefreshTokenRepository
	userRepo         repositories.UserRepository
	now              func() time.Time
}

// NewTokenService creates a new token service
func NewTokenService(
	cfg TokenServiceConfig,
	refreshTokenRepo repositories.RefreshTokenRepository,
	userRepo repositories.UserRepository,
) TokenService {
	return &tokenService{
		cfg:              cfg,
		refreshTokenRepo: refreshTokenRepo,
		userRepo:         userRepo,
		now:              time.Now,
	}
}

// IssueForUser mints an access token and a persisted refresh token
func (s *tokenService) IssueForUser(ctx context.Context, user *models.User) (*models.TokenPair, error) {
	now := s.now()

	access, accessExpiresAt, err := s.sign(models.TokenTypeAccess, user, uuid.NewString(), now, s.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}

	refreshJTI := uuid.NewString()
	refresh, refreshExpiresAt, err := s.sign(models.TokenTypeRefresh, user, refreshJTI, now, s.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}

	record := &models.RefreshToken{
		JTI:       refreshJTI,
		UserID:    user.ID,
		IssuedAt:  now,
		ExpiresAt: refreshExpiresAt,
	}
	if err := s.refreshTokenRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: failed to store refresh token: %w", ErrPersistence, err)
	}

	return &models.TokenPair{
		Access:           access,
		Refresh:          refresh,
		AccessExpiresAt:  accessExpiresAt,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// Refresh revokes the presented refresh token and issues a new pair
func (s *tokenService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := s.parse(refreshToken, models.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	record, err := s.refreshTokenRepo.GetByJTI(ctx, claims.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown refresh token", ErrInvalidToken)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if !record.IsActive(s.now()) {
		return nil, fmt.Errorf("%w: refresh token is no longer active", ErrInvalidToken)
	}

	// Losing a concurrent rotation surfaces as not found
	if err := s.refreshTokenRepo.Revoke(ctx, record.JTI, s.now()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: refresh token already used", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	user, err := s.userRepo.GetByID(ctx, record.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: token owner no longer exists", ErrInvalidToken)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return s.IssueForUser(ctx, user)
}

// ParseAccessToken validates an access token and returns its claims
func (s *tokenService) ParseAccessToken(accessToken string) (*models.AccessClaims, error) {
	claims, err := s.parse(accessToken, models.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	return &models.AccessClaims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke marks a refresh token as revoked. Unknown or already revoked tokens
// are reported as ErrInvalidToken.
func (s *tokenService) Revoke(ctx context.Context, refreshToken string) error {
	claims, err := s.parse(refreshToken, models.TokenTypeRefresh)
	if err != nil {
		return err
	}

	if err := s.refreshTokenRepo.Revoke(ctx, claims.ID, s.now()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: refresh token is not active", ErrInvalidToken)
		}
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// PruneExpired deletes refresh tokens that can no longer be used
func (s *tokenService) PruneExpired(ctx context.Context) (int64, error) {
	deleted, err := s.refreshTokenRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return deleted, nil
}

func (s *tokenService) sign(tokenType string, user *models.User, jti string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	expiresAt := now.Add(ttl)
	claims := tokenClaims{
		TokenType: tokenType,
		UserID:    user.ID,
		Email:     user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    s.cfg.Issuer,
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.SigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, expiresAt, nil
}

func (s *tokenService) parse(tokenString, tokenType string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return s.cfg.SigningKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("%w: expected %s token, got %q", ErrInvalidToken, tokenType, claims.TokenType)
	}
	if claims.ID == "" || claims.UserID == 0 {
		return nil, fmt.Errorf("%w: missing token claims", ErrInvalidToken)
	}
	return claims, nil
}
