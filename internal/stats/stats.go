package stats

import (
	"errors"

	"bloglist/internal/models"
)

// ErrEmptyInput - у пустого списка нет любимого поста
var ErrEmptyInput = errors.New("список постов пуст")

// TotalLikes возвращает сумму лайков по всем постам, 0 для пустого списка.
func TotalLikes(posts []models.Post) int {
	sum := 0
	for _, post := range posts {
		sum += post.Likes
	}
	return sum
}

// FavoriteBlog возвращает пост с максимальным числом лайков.
// Замена только при строгом превышении, поэтому при равенстве
// побеждает первый встреченный.
func FavoriteBlog(posts []models.Post) (*models.Post, error) {
	if len(posts) == 0 {
		return nil, ErrEmptyInput
	}

	favorite := &posts[0]
	for i := 1; i < len(posts); i++ {
		if posts[i].Likes > favorite.Likes {
			favorite = &posts[i]
		}
	}

	return favorite, nil
}
