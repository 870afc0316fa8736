package services

//go:generate mockgen -source=user_service.go -destination=mocks/user_service.go -package=mocks

import (
	"context"
	"errors"

	"nc-news/models"
	"nc-news/repositories"
)

type UserService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	ResolveAuthor(ctx context.Context, username string) (string, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// ResolveAuthor returns the username to attribute content to. An unknown
// username is materialised as a placeholder user with the anonymous name and avatar.
func (s *userService) ResolveAuthor(ctx context.Context, username string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return user.Username, nil
	}

	var notFound models.ErrorNotFound
	if !errors.As(err, &notFound) {
		return "", err
	}

	placeholder := &models.User{
		Username:  username,
		Name:      models.AnonymousName,
		AvatarURL: models.AnonymousAvatarURL,
	}
	if err := s.userRepo.Create(ctx, placeholder); err != nil {
		return "", err
	}

	return placeholder.Username, nil
}
