package services

import (
	"github.com/sirupsen/logrus"

	"github.com/blogem/social-auth/authenticator"
	"github.com/blogem/social-auth/repositories"
)

// Services holds all service instances
type Services struct {
	Resolver    AccountResolver
	Tokens      TokenService
	SocialLogin SocialLoginService
	Users       UserService
}

// NewServices creates and initializes all service instances
func NewServices(
	repos *repositories.Repositories,
	provider authenticator.Provider,
	tokenCfg TokenServiceConfig,
	logger logrus.FieldLogger,
) *Services {
	resolver := NewAccountResolver(repos.User, repos.SocialAccount, logger)
	tokens := NewTokenService(tokenCfg, repos.RefreshToken, repos.User)

	return &Services{
		Resolver:    resolver,
		Tokens:      tokens,
		SocialLogin: NewSocialLoginService(provider, resolver, tokens, logger),
		Users:       NewUserService(repos.User),
	}
}
