package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/blogem/social-auth/models"
	"github.com/blogem/social-auth/repositories"
)

// AccountResolver maps a provider profile to exactly one local user
type AccountResolver interface {
	Resolve(ctx context.Context, profile *models.ProviderProfile) (*models.User, error)
}

type accountResolver struct {
	userRepo    repositories.UserRepository
	accountRepo repositories.SocialAccountRepository
	logger      logrus.FieldLogger
}

// NewAccountResolver creates a new account resolver
func NewAccountResolver(
	userRepo repositories.UserRepository,
	accountRepo repositories.SocialAccountRepository,
	logger logrus.FieldLogger,
) AccountResolver {
	return &accountResolver{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Resolve returns the user the profile belongs to.
// Users matched by email are returned as-is without recording a social account.
// A new user is stored together with a social account for the profile's provider identity.
func (r *accountResolver) Resolve(ctx context.Context, profile *models.ProviderProfile) (*models.User, error) {
	if profile == nil {
		return nil, fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	log := r.logger.WithFields(logrus.Fields{
		"provider": profile.Provider,
		"email":    profile.Email,
	})

	if profile.ExplicitlyUnverified() {
		log.Info("Rejected social login with unverified email")
		return nil, ErrUnverifiedEmail
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	// Known provider identity
	account, err := r.accountRepo.GetByProviderUID(ctx, profile.Provider, profile.Subject)
	switch {
	case err == nil:
		user, err := r.userRepo.GetByID(ctx, account.UserID)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get linked user: %w", ErrPersistence, err)
		}
		return user, nil
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("%w: failed to get social account: %w", ErrPersistence, err)
	}

	user, err := r.userRepo.GetByEmail(ctx, profile.Email)
	if err == nil {
		log.WithField("user_id", user.ID).Debug("Matched existing user by email")
		return user, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: failed to look up user: %w", ErrPersistence, err)
	}

	user = &models.User{
		Email:     profile.Email,
		Username:  models.UsernameFromEmail(profile.Email),
		FirstName: profile.GivenName,
		LastName:  profile.FamilyName,
	}
	link := &models.SocialAccount{
		Provider: profile.Provider,
		UID:      profile.Subject,
	}
	if err := r.userRepo.CreateWithSocialAccount(ctx, user, link); err != nil {
		return nil, fmt.Errorf("%w: failed to create user: %w", ErrPersistence, err)
	}

	log.WithField("user_id", user.ID).Info("Created user from social login")
	return user, nil
}
