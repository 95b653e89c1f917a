package service

import (
	"context"

	"progression-service/internal/models"
)

type UserService struct {
	Users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Users.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Users.FindAll(ctx)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.Users.Delete(ctx, id)
}
