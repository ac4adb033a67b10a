package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/social-auth/models"
	"github.com/blogem/social-auth/repositories"
	"github.com/blogem/social-auth/repositories/mocks"
)

// TokenServiceTestSuite is a test suite for the token service
type TokenServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	now             time.Time
	service         *tokenService
	mockRefreshRepo *mocks.MockRefreshTokenRepository
	mockUserRepo    *mocks.MockUserRepository
	user            *models.User
	testSigningKey  []byte
	testTokenConfig TokenServiceConfig
}

// SetupTest sets up the test suite before each test
func (suite *TokenServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	suite.mockRefreshRepo = mocks.NewMockRefreshTokenRepository(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepository(suite.T())
	suite.user = &models.User{ID: 42, Email: "jane@example.com", Username: "jane"}
	suite.testSigningKey = []byte("0123456789abcdef0123456789abcdef")
	suite.testTokenConfig = TokenServiceConfig{
		Issuer:     "https://api.example.com",
		SigningKey: suite.testSigningKey,
		AccessTTL:  5 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}

	suite.service = NewTokenService(suite.testTokenConfig, suite.mockRefreshRepo, suite.mockUserRepo).(*tokenService)
	suite.service.now = func() time.Time { return suite.now }
}

func (suite *TokenServiceTestSuite) issue() *models.TokenPair {
	suite.mockRefreshRepo.EXPECT().Create(suite.ctx, mock.AnythingOfType("*models.RefreshToken")).Return(nil).Once()

	pair, err := suite.service.IssueForUser(suite.ctx, suite.user)
	require.NoError(suite.T(), err)
	return pair
}

// TestIssueForUser tests the issued pair and the persisted refresh record
func (suite *TokenServiceTestSuite) TestIssueForUser() {
	var stored *models.RefreshToken
	suite.mockRefreshRepo.EXPECT().Create(suite.ctx, mock.Anything).
		Run(func(_ context.Context, token *models.RefreshToken) { stored = token }).
		Return(nil).Once()

	pair, err := suite.service.IssueForUser(suite.ctx, suite.user)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.now.Add(5*time.Minute), pair.AccessExpiresAt)
	assert.Equal(suite.T(), suite.now.Add(24*time.Hour), pair.RefreshExpiresAt)
	require.NotNil(suite.T(), stored)
	assert.Equal(suite.T(), int64(42), stored.UserID)
	assert.Equal(suite.T(), pair.RefreshExpiresAt, stored.ExpiresAt)

	claims, err := suite.service.ParseAccessToken(pair.Access)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(42), claims.UserID)
	assert.Equal(suite.T(), "jane@example.com", claims.Email)
	assert.NotEqual(suite.T(), stored.JTI, claims.JTI)
}

// TestIssueForUser_StoreFailure tests that a failed refresh record write fails the issue
func (suite *TokenServiceTestSuite) TestIssueForUser_StoreFailure() {
	suite.mockRefreshRepo.EXPECT().Create(suite.ctx, mock.Anything).Return(errors.New("disk full")).Once()

	pair, err := suite.service.IssueForUser(suite.ctx, suite.user)

	assert.ErrorIs(suite.T(), err, ErrPersistence)
	assert.Nil(suite.T(), pair)
}

// TestParseAccessToken_Rejections tests tokens the parser must refuse
func (suite *TokenServiceTestSuite) TestParseAccessToken_Rejections() {
	pair := suite.issue()

	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(suite.T(), err)
		return signed
	}
	valid := tokenClaims{
		TokenType: models.TokenTypeAccess,
		UserID:    42,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti",
			Issuer:    suite.testTokenConfig.Issuer,
			ExpiresAt: jwt.NewNumericDate(suite.now.Add(time.Minute)),
		},
	}

	wrongIssuer := valid
	wrongIssuer.Issuer = "https://evil.example.com"
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(suite.now.Add(-time.Minute))
	noExpiry := valid
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"refresh token", pair.Refresh},
		{"garbage", "not-a-jwt"},
		{"wrong key", sign(jwt.SigningMethodHS256, []byte("another key"), valid)},
		{"wrong method", sign(jwt.SigningMethodHS512, suite.testSigningKey, valid)},
		{"none method", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid)},
		{"wrong issuer", sign(jwt.SigningMethodHS256, suite.testSigningKey, wrongIssuer)},
		{"expired", sign(jwt.SigningMethodHS256, suite.testSigningKey, expired)},
		{"no expiry", sign(jwt.SigningMethodHS256, suite.testSigningKey, noExpiry)},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.ParseAccessToken(tt.token)
			assert.ErrorIs(suite.T(), err, ErrInvalidToken)
		})
	}

	_, err := suite.service.ParseAccessToken(sign(jwt.SigningMethodHS256, suite.testSigningKey, valid))
	assert.NoError(suite.T(), err)
}

// TestRefresh_Rotates tests that a refresh revokes the old token and issues a new pair
func (suite *TokenServiceTestSuite) TestRefresh_Rotates() {
	var stored *models.RefreshToken
	suite.mockRefreshRepo.EXPECT().Create(suite.ctx, mock.Anything).
		Run(func(_ context.Context, token *models.RefreshToken) { stored = token }).
		Return(nil).Once()
	pair, err := suite.service.IssueForUser(suite.ctx, suite.user)
	require.NoError(suite.T(), err)

	suite.mockRefreshRepo.EXPECT().GetByJTI(suite.ctx, stored.JTI).Return(stored, nil).Once()
	suite.mockRefreshRepo.EXPECT().Revoke(suite.ctx, stored.JTI, suite.now).Return(nil).Once()
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, int64(42)).Return(suite.user, nil).Once()
	suite.mockRefreshRepo.EXPECT().Create(suite.ctx, mock.Anything).Return(nil).Once()

	rotated, err := suite.service.Refresh(suite.ctx, pair.Refresh)

	require.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), pair.Refresh, rotated.Refresh)
}

// TestRefresh_InactiveTokens tests unknown, revoked, reused and access tokens
func (suite *TokenServiceTestSuite) TestRefresh_InactiveTokens() {
	suite.Run("access token", func() {
		suite.SetupTest()
		pair := suite.issue()

		_, err := suite.service.Refresh(suite.ctx, pair.Access)
		assert.ErrorIs(suite.T(), err, ErrInvalidToken)
	})

	suite.Run("unknown jti", func() {
		suite.SetupTest()
		pair := suite.issue()
		suite.mockRefreshRepo.EXPECT().GetByJTI(suite.ctx, mock.Anything).Return(nil, repositories.ErrNotFound).Once()

		_, err := suite.service.Refresh(suite.ctx, pair.Refresh)
		assert.ErrorIs(suite.T(), err, ErrInvalidToken)
	})

	suite.Run("revoked", func() {
		suite.SetupTest()
		pair := suite.issue()
		revokedAt := suite.now.Add(-time.Second)
		suite.mockRefreshRepo.EXPECT().GetByJTI(suite.ctx, mock.Anything).
			Return(&models.RefreshToken{UserID: 42, ExpiresAt: suite.now.Add(time.Hour), RevokedAt: &revokedAt}, nil).Once()

		_, err := suite.service.Refresh(suite.ctx, pair.Refresh)
		assert.ErrorIs(suite.T(), err, ErrInvalidToken)
	})

	suite.Run("lost concurrent rotation", func() {
		suite.SetupTest()
		pair := suite.issue()
		suite.mockRefreshRepo.EXPECT().GetByJTI(suite.ctx, mock.Anything).
			Return(&models.RefreshToken{JTI: "x", UserID: 42, ExpiresAt: suite.now.Add(time.Hour)}, nil).Once()
		suite.mockRefreshRepo.EXPECT().Revoke(suite.ctx, "x", suite.now).Return(repositories.ErrNotFound).Once()

		_, err := suite.service.Refresh(suite.ctx, pair.Refresh)
		assert.ErrorIs(suite.T(), err, ErrInvalidToken)
	})

	suite.Run("store failure", func() {
		suite.SetupTest()
		pair := suite.issue()
		suite.mockRefreshRepo.EXPECT().GetByJTI(suite.ctx, mock.Anything).Return(nil, errors.New("locked")).Once()

		_, err := suite.service.Refresh(suite.ctx, pair.Refresh)
		assert.ErrorIs(suite.T(), err, ErrPersistence)
	})
}

// TestRevoke tests revoking a refresh token
func (suite *TokenServiceTestSuite) TestRevoke() {
	pair := suite.issue()

	suite.mockRefreshRepo.EXPECT().Revoke(suite.ctx, mock.Anything, suite.now).Return(nil).Once()
	assert.NoError(suite.T(), suite.service.Revoke(suite.ctx, pair.Refresh))

	suite.mockRefreshRepo.EXPECT().Revoke(suite.ctx, mock.Anything, suite.now).Return(repositories.ErrNotFound).Once()
	assert.ErrorIs(suite.T(), suite.service.Revoke(suite.ctx, pair.Refresh), ErrInvalidToken)
}

// TestPruneExpired tests deleting expired refresh tokens
func (suite *TokenServiceTestSuite) TestPruneExpired() {
	suite.mockRefreshRepo.EXPECT().DeleteExpired(suite.ctx, suite.now).Return(int64(3), nil).Once()

	deleted, err := suite.service.PruneExpired(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), deleted)
}

// TestTokenServiceTestSuite runs the test suite
func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
