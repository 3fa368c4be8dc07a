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
	"bloglist/internal/stats"
)

func newPostServiceForTest(postRepo *mockPostRepository, imageRepo *mockImageRepository) PostService {
	cfg := &config.Config{StoreTimeout: 5 * time.Second}
	return NewPostService(postRepo, imageRepo, nil, cfg)
}

func TestPostService_CreatePost(t *testing.T) {
	identity := &models.Identity{UserID: "u1", Username: "root"}

	t.Run("Пост записывается за личностью запроса", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
			return p.UserID == "u1" && p.Title == "React patterns" && p.Likes == 0
		})).Return(nil)

		svc := newPostServiceForTest(postRepo, new(mockImageRepository))

		post, err := svc.CreatePost(context.Background(), identity, CreatePostRequest{
			Title: "React patterns",
			URL:   "https://reactpatterns.com/",
		})

		require.NoError(t, err)
		assert.Equal(t, "u1", post.UserID)
		assert.Equal(t, 0, post.Likes)
		postRepo.AssertExpectations(t)
	})

	tests := []struct {
		name string
		req  CreatePostRequest
	}{
		{
			name: "Без заголовка",
			req:  CreatePostRequest{URL: "http://example.com"},
		},
		{
			name: "Без url",
			req:  CreatePostRequest{Title: "No url"},
		},
		{
			name: "Отрицательные лайки",
			req:  CreatePostRequest{Title: "Neg", URL: "http://example.com", Likes: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(mockPostRepository)
			svc := newPostServiceForTest(postRepo, new(mockImageRepository))

			post, err := svc.CreatePost(context.Background(), identity, tt.req)

			assert.Nil(t, post)
			assert.ErrorIs(t, err, models.ErrValidation)
			// до хранилища дело не дошло
			postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestPostService_DeletePost(t *testing.T) {
	owner := &models.Identity{UserID: "u1", Username: "root"}
	stranger := &models.Identity{UserID: "u2", Username: "intruder"}
	storedPost := &models.Post{PostID: "p1", Title: "React patterns", URL: "https://reactpatterns.com/", UserID: "u1"}

	t.Run("Владелец удаляет свой пост", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("GetByID", mock.Anything, "p1").Return(storedPost, nil)
		postRepo.On("Delete", mock.Anything, "p1").Return(nil)

		svc := newPostServiceForTest(postRepo, new(mockImageRepository))

		err := svc.DeletePost(context.Background(), owner, "p1")

		assert.NoError(t, err)
		postRepo.AssertExpectations(t)
	})

	t.Run("Чужой пост прячется за ErrNotFound и не удаляется", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("GetByID", mock.Anything, "p1").Return(storedPost, nil)

		svc := newPostServiceForTest(postRepo, new(mockImageRepository))

		err := svc.DeletePost(context.Background(), stranger, "p1")

		assert.ErrorIs(t, err, models.ErrNotFound)
		postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Отсутствующий пост даёт ту же ошибку", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("GetByID", mock.Anything, "missing").
			Return(nil, fmt.Errorf("пост с ID missing: %w", models.ErrNotFound))

		svc := newPostServiceForTest(postRepo, new(mockImageRepository))

		err := svc.DeletePost(context.Background(), stranger, "missing")

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestPostService_ReplacePost(t *testing.T) {
	storedPost := &models.Post{PostID: "p1", Title: "Old", Author: "A", URL: "http://old", Likes: 1, UserID: "u1"}

	postRepo := new(mockPostRepository)
	postRepo.On("GetByID", mock.Anything, "p1").Return(storedPost, nil)
	postRepo.On("Replace", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
		// поля заменяются целиком, владелец остаётся прежним
		return p.Title == "New" && p.Likes == 9 && p.UserID == "u1"
	})).Return(nil)

	svc := newPostServiceForTest(postRepo, new(mockImageRepository))

	post, err := svc.ReplacePost(context.Background(), "p1", ReplacePostRequest{
		Title: "New",
		URL:   "http://new",
		Likes: 9,
	})

	require.NoError(t, err)
	assert.Equal(t, "New", post.Title)
	assert.Equal(t, "u1", post.UserID)
	postRepo.AssertExpectations(t)
}

func TestPostService_Stats(t *testing.T) {
	t.Run("Суммарные лайки и любимый пост", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("GetAll", mock.Anything).Return([]models.Post{
			{PostID: "A", Likes: 5},
			{PostID: "B", Likes: 12},
			{PostID: "C", Likes: 0},
		}, nil)

		svc := newPostServiceForTest(postRepo, new(mockImageRepository))

		result, err := svc.Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 17, result.TotalLikes)
		assert.Equal(t, "B", result.Favorite.PostID)
	})

	t.Run("Пустое хранилище", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("GetAll", mock.Anything).Return([]models.Post{}, nil)

		svc := newPostServiceForTest(postRepo, new(mockImageRepository))

		result, err := svc.Stats(context.Background())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, stats.ErrEmptyInput)
	})
}
