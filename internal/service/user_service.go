package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"bloglist/internal/config"
	"bloglist/internal/models"
	"bloglist/internal/repository"
)

// UserWithPosts - пользователь с развёрнутым списком его постов
type UserWithPosts struct {
	models.User
	Posts []models.Post `json:"posts"`
}

type UserService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]UserWithPosts, error)
}

type userService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		postRepo: postRepo,
		cfg:      cfg,
	}
}

func (s *userService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	if utf8.RuneCountInString(req.Username) < 3 {
		return nil, fmt.Errorf("имя пользователя должно быть не менее 3 символов: %w", models.ErrValidation)
	}
	if utf8.RuneCountInString(req.Password) < 3 {
		return nil, fmt.Errorf("пароль должен быть не менее 3 символов: %w", models.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	existingUser, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err == nil && existingUser != nil {
		return nil, fmt.Errorf("пользователь %s: %w", req.Username, models.ErrDuplicateUsername)
	}
	if err != nil && !errors.Is(err, models.ErrUnknownUser) {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Name:     req.Name,
	}

	// уникальность также держит constraint в БД, репозиторий вернёт
	// ErrDuplicateUsername при гонке двух регистраций
	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]UserWithPosts, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]UserWithPosts, 0, len(users))
	for _, user := range users {
		posts, err := s.postRepo.GetByUserID(ctx, user.UserID)
		if err != nil {
			return nil, err
		}
		result = append(result, UserWithPosts{User: user, Posts: posts})
	}

	return result, nil
}
