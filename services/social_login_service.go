package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/blogem/social-auth/authenticator"
	"github.com/blogem/social-auth/models"
)

// LoginResult is the outcome of a completed social login
type LoginResult struct {
	User   *models.User
	Tokens *models.TokenPair
}

// SocialLoginService completes a login with an identity provider
type SocialLoginService interface {
	// AuthURL returns the provider consent URL carrying state
	AuthURL(state string) string
	// Exchange completes the login from an authorization code
	Exchange(ctx context.Context, code string) (*LoginResult, error)
	// ExchangeAccessToken completes the login from a provider access token
	ExchangeAccessToken(ctx context.Context, accessToken string) (*LoginResult, error)
}

type socialLoginService struct {
	provider     authenticator.Provider
	resolver     AccountResolver
	tokenService TokenService
	logger       logrus.FieldLogger
}

// NewSocialLoginService creates a new social login service
func NewSocialLoginService(
	provider authenticator.Provider,
	resolver AccountResolver,
	tokenService TokenService,
	logger logrus.FieldLogger,
) SocialLoginService {
	return &socialLoginService{
		provider:     provider,
		resolver:     resolver,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (s *socialLoginService) AuthURL(state string) string {
	return s.provider.GetAuthURL(state)
}

func (s *socialLoginService) Exchange(ctx context.Context, code string) (*LoginResult, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: authorization code is required", ErrExchange)
	}

	token, err := s.provider.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s code exchange: %w", ErrExchange, s.provider.Name(), err)
	}

	return s.login(ctx, token)
}

func (s *socialLoginService) ExchangeAccessToken(ctx context.Context, accessToken string) (*LoginResult, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("%w: access token is required", ErrExchange)
	}

	return s.login(ctx, &authenticator.Token{AccessToken: accessToken})
}

func (s *socialLoginService) login(ctx context.Context, token *authenticator.Token) (*LoginResult, error) {
	profile, err := s.provider.GetProfile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s profile: %w", ErrExchange, s.provider.Name(), err)
	}

	user, err := s.resolver.Resolve(ctx, profile)
	if err != nil {
		return nil, err
	}

	tokens, err := s.tokenService.IssueForUser(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"provider": s.provider.Name(),
		"user_id":  user.ID,
	}).Info("Social login succeeded")

	return &LoginResult{User: user, Tokens: tokens}, nil
}
