package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blogem/social-auth/models"
	"github.com/blogem/social-auth/repositories"
	"github.com/blogem/social-auth/repositories/mocks"
)

func TestUserService_GetUserByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		user := &models.User{ID: 1, Email: "a@x.com"}
		repo.EXPECT().GetByID(ctx, int64(1)).Return(user, nil)

		got, err := NewUserService(repo).GetUserByID(ctx, 1)
		assert.NoError(t, err)
		assert.Same(t, user, got)
	})

	t.Run("invalid ID", func(t *testing.T) {
		_, err := NewUserService(mocks.NewMockUserRepository(t)).GetUserByID(ctx, 0)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		repo.EXPECT().GetByID(ctx, int64(2)).Return(nil, repositories.ErrNotFound)

		_, err := NewUserService(repo).GetUserByID(ctx, 2)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		assert.NotErrorIs(t, err, ErrPersistence)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		repo.EXPECT().GetByID(ctx, int64(3)).Return(nil, errors.New("locked"))

		_, err := NewUserService(repo).GetUserByID(ctx, 3)
		assert.ErrorIs(t, err, ErrPersistence)
	})
}

func TestUserService_GetUserCount(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().Count(context.Background()).Return(4, nil)

	count, err := NewUserService(repo).GetUserCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}
