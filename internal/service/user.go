package service

import (
	"context"

	"library-of-things-backend/internal/domain"
	"library-of-things-backend/internal/repository"
)

type userService struct {
	store repository.Store
}

func NewUserService(store repository.Store) UserService {
	return &userService{store: store}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.UserProfile, error) {
	return s.store.Users().GetProfile(ctx, userID)
}
