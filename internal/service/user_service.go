package service

import (
	"context"

	"github.com/Nischal699/spotify-api/internal/domain"
)

// UserService provides read access to user accounts for the chat core.
type UserService struct {
	userRepo IUserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUserByID retrieves a user by their ID. Returns (nil, nil) when no such
// account exists.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.GetUserByID(ctx, id)
}
