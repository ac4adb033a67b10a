package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/social-auth/authenticator"
	authmocks "github.com/blogem/social-auth/authenticator/mocks"
	"github.com/blogem/social-auth/models"
	"github.com/blogem/social-auth/services"
	"github.com/blogem/social-auth/services/mocks"
)

// SocialLoginServiceTestSuite is a test suite for the social login flow
type SocialLoginServiceTestSuite struct {
	suite.Suite
	ctx              context.Context
	service          services.SocialLoginService
	mockProvider     *authmocks.MockProvider
	mockResolver     *mocks.MockAccountResolver
	mockTokenService *mocks.MockTokenService
	profile          *models.ProviderProfile
	user             *models.User
	tokens           *models.TokenPair
}

// SetupTest sets up the test suite before each test
func (suite *SocialLoginServiceTestSuite) SetupTest() {
	logger, _ := test.NewNullLogger()
	suite.ctx = context.Background()
	suite.mockProvider = authmocks.NewMockProvider(suite.T())
	suite.mockResolver = mocks.NewMockAccountResolver(suite.T())
	suite.mockTokenService = mocks.NewMockTokenService(suite.T())
	suite.service = services.NewSocialLoginService(suite.mockProvider, suite.mockResolver, suite.mockTokenService, logger)

	suite.mockProvider.EXPECT().Name().Return("google").Maybe()

	suite.profile = &models.ProviderProfile{Provider: "google", Subject: "1", Email: "a@x.com"}
	suite.user = &models.User{ID: 1, Email: "a@x.com", Username: "a"}
	suite.tokens = &models.TokenPair{Access: "access", Refresh: "refresh"}
}

// TestAuthURL tests that the consent URL comes from the provider
func (suite *SocialLoginServiceTestSuite) TestAuthURL() {
	suite.mockProvider.EXPECT().GetAuthURL("state").Return("https://accounts.google.com/o/oauth2/auth?state=state")

	assert.Equal(suite.T(), "https://accounts.google.com/o/oauth2/auth?state=state", suite.service.AuthURL("state"))
}

// TestExchange_Success tests a complete code exchange
func (suite *SocialLoginServiceTestSuite) TestExchange_Success() {
	token := &authenticator.Token{AccessToken: "provider-access", IDToken: "id-token"}
	suite.mockProvider.EXPECT().ExchangeCode(suite.ctx, "code").Return(token, nil).Once()
	suite.mockProvider.EXPECT().GetProfile(suite.ctx, token).Return(suite.profile, nil).Once()
	suite.mockResolver.EXPECT().Resolve(suite.ctx, suite.profile).Return(suite.user, nil).Once()
	suite.mockTokenService.EXPECT().IssueForUser(suite.ctx, suite.user).Return(suite.tokens, nil).Once()

	result, err := suite.service.Exchange(suite.ctx, "code")

	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), suite.user, result.User)
	assert.Same(suite.T(), suite.tokens, result.Tokens)
}

// TestExchange_MissingCode tests that an empty code never reaches the provider
func (suite *SocialLoginServiceTestSuite) TestExchange_MissingCode() {
	_, err := suite.service.Exchange(suite.ctx, "")

	assert.ErrorIs(suite.T(), err, services.ErrExchange)
}

// TestExchange_ProviderFailure tests that provider errors become ErrExchange
func (suite *SocialLoginServiceTestSuite) TestExchange_ProviderFailure() {
	providerErr := errors.New("oauth2: invalid_grant")
	suite.mockProvider.EXPECT().ExchangeCode(suite.ctx, "code").Return(nil, providerErr).Once()

	_, err := suite.service.Exchange(suite.ctx, "code")

	assert.ErrorIs(suite.T(), err, services.ErrExchange)
	assert.ErrorIs(suite.T(), err, providerErr)
}

// TestExchange_UnverifiedEmail tests that a resolver rejection is passed through unchanged
func (suite *SocialLoginServiceTestSuite) TestExchange_UnverifiedEmail() {
	token := &authenticator.Token{AccessToken: "provider-access"}
	suite.mockProvider.EXPECT().ExchangeCode(suite.ctx, "code").Return(token, nil).Once()
	suite.mockProvider.EXPECT().GetProfile(suite.ctx, token).Return(suite.profile, nil).Once()
	suite.mockResolver.EXPECT().Resolve(suite.ctx, suite.profile).Return(nil, services.ErrUnverifiedEmail).Once()

	result, err := suite.service.Exchange(suite.ctx, "code")

	assert.ErrorIs(suite.T(), err, services.ErrUnverifiedEmail)
	assert.NotErrorIs(suite.T(), err, services.ErrExchange)
	assert.Nil(suite.T(), result)
}

// TestExchangeAccessToken tests the access token flow through the userinfo profile
func (suite *SocialLoginServiceTestSuite) TestExchangeAccessToken() {
	suite.mockProvider.EXPECT().GetProfile(suite.ctx, &authenticator.Token{AccessToken: "provider-access"}).
		Return(suite.profile, nil).Once()
	suite.mockResolver.EXPECT().Resolve(suite.ctx, suite.profile).Return(suite.user, nil).Once()
	suite.mockTokenService.EXPECT().IssueForUser(suite.ctx, suite.user).Return(suite.tokens, nil).Once()

	result, err := suite.service.ExchangeAccessToken(suite.ctx, "provider-access")

	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), suite.user, result.User)
}

// TestExchangeAccessToken_ProfileFailure tests that userinfo errors become ErrExchange
func (suite *SocialLoginServiceTestSuite) TestExchangeAccessToken_ProfileFailure() {
	suite.mockProvider.EXPECT().GetProfile(suite.ctx, &authenticator.Token{AccessToken: "expired"}).
		Return(nil, errors.New("401 Unauthorized")).Once()

	_, err := suite.service.ExchangeAccessToken(suite.ctx, "expired")
	assert.ErrorIs(suite.T(), err, services.ErrExchange)

	_, err = suite.service.ExchangeAccessToken(suite.ctx, "")
	assert.ErrorIs(suite.T(), err, services.ErrExchange)
}

// TestExchange_IssueFailure tests that credential failures are passed through
func (suite *SocialLoginServiceTestSuite) TestExchange_IssueFailure() {
	token := &authenticator.Token{AccessToken: "provider-access"}
	suite.mockProvider.EXPECT().ExchangeCode(suite.ctx, "code").Return(token, nil).Once()
	suite.mockProvider.EXPECT().GetProfile(suite.ctx, token).Return(suite.profile, nil).Once()
	suite.mockResolver.EXPECT().Resolve(suite.ctx, suite.profile).Return(suite.user, nil).Once()
	suite.mockTokenService.EXPECT().IssueForUser(suite.ctx, suite.user).Return(nil, services.ErrPersistence).Once()

	_, err := suite.service.Exchange(suite.ctx, "code")

	assert.ErrorIs(suite.T(), err, services.ErrPersistence)
}

// TestSocialLoginServiceTestSuite runs the test suite
func TestSocialLoginServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SocialLoginServiceTestSuite))
}
