package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	UserID       string         `json:"userId" db:"user_id"`
	Username     string         `json:"username" db:"username"`
	Name         string         `json:"name" db:"name"`
	PasswordHash string         `json:"-" db:"password_hash"`
	PostIDs      pq.StringArray `json:"postIds" db:"post_ids"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID    string    `json:"id" db:"post_id"`
	Title     string    `json:"title" db:"title"`
	Author    string    `json:"author,omitempty" db:"author"`
	URL       string    `json:"url" db:"url"`
	Likes     int       `json:"likes" db:"likes"`
	UserID    string    `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Owner     *UserRef  `json:"user,omitempty" db:"-"`
	Images    []Image   `json:"images,omitempty" db:"-"`
}

// UserRef - владелец поста, подмешивается в выдачу списков
type UserRef struct {
	UserID   string `json:"userId" db:"owner_id"`
	Username string `json:"username" db:"owner_username"`
	Name     string `json:"name" db:"owner_name"`
}

type Image struct {
	ImageID   string    `json:"imageId" db:"image_id"`
	PostID    string    `json:"postId" db:"post_id"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Identity - личность запроса, живёт только в контексте одного запроса
type Identity struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}
