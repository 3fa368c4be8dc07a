package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bloglist/internal/config"
	"bloglist/internal/models"
	"bloglist/internal/repository"
)

func newUserServiceForTest(userRepo *mockUserRepository, postRepo *mockPostRepository) UserService {
	cfg := &config.Config{StoreTimeout: 5 * time.Second}
	return NewUserService(userRepo, postRepo, cfg)
}

func TestUserService_Register(t *testing.T) {
	t.Run("Успешная регистрация", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("GetUserByUsername", mock.Anything, "mluukkai").
			Return(nil, fmt.Errorf("пользователь mluukkai: %w", models.ErrUnknownUser))
		userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "mluukkai" && u.Name == "Matti Luukkainen"
		}), "salainen").Return(nil)

		svc := newUserServiceForTest(userRepo, new(mockPostRepository))

		user, err := svc.Register(context.Background(), repository.CreateUserRequest{
			Username: "mluukkai",
			Name:     "Matti Luukkainen",
			Password: "salainen",
		})

		require.NoError(t, err)
		assert.Equal(t, "mluukkai", user.Username)
		userRepo.AssertExpectations(t)
	})

	t.Run("Занятое имя пользователя", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("GetUserByUsername", mock.Anything, "root").
			Return(&models.User{UserID: "u1", Username: "root"}, nil)

		svc := newUserServiceForTest(userRepo, new(mockPostRepository))

		user, err := svc.Register(context.Background(), repository.CreateUserRequest{
			Username: "root",
			Password: "salainen",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, models.ErrDuplicateUsername)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Короткое имя или пароль не доходят до хранилища", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		svc := newUserServiceForTest(userRepo, new(mockPostRepository))

		_, err := svc.Register(context.Background(), repository.CreateUserRequest{
			Username: "ab",
			Password: "salainen",
		})
		assert.ErrorIs(t, err, models.ErrValidation)

		_, err = svc.Register(context.Background(), repository.CreateUserRequest{
			Username: "mluukkai",
			Password: "sa",
		})
		assert.ErrorIs(t, err, models.ErrValidation)

		userRepo.AssertNotCalled(t, "GetUserByUsername", mock.Anything, mock.Anything)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	userRepo := new(mockUserRepository)
	postRepo := new(mockPostRepository)

	userRepo.On("GetAllUsers", mock.Anything).Return([]models.User{
		{UserID: "u1", Username: "root", Name: "Superuser"},
	}, nil)
	postRepo.On("GetByUserID", mock.Anything, "u1").Return([]models.Post{
		{PostID: "p1", Title: "React patterns", URL: "https://reactpatterns.com/", UserID: "u1"},
	}, nil)

	svc := newUserServiceForTest(userRepo, postRepo)

	users, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "root", users[0].Username)
	require.Len(t, users[0].Posts, 1)
	assert.Equal(t, "p1", users[0].Posts[0].PostID)
}
