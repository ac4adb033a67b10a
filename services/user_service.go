package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogem/social-auth/models"
	"github.com/blogem/social-auth/repositories"
)

// UserService interface defines user lookups for authenticated requests
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserCount(ctx context.Context) (int, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetUserByID retrieves a user. Missing users keep repositories.ErrNotFound in the chain.
func (s *userService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid user ID: %d: %w", id, repositories.ErrNotFound)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return user, nil
}

// GetUserCount returns the number of registered users
func (s *userService) GetUserCount(ctx context.Context) (int, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return count, nil
}
