package service

import (
	"bloglist/internal/config"
	"bloglist/internal/repository"
	"bloglist/internal/storage"
)

type Service struct {
	User UserService
	Post PostService
	Auth AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		User: NewUserService(rep.User, rep.Post, cfg),
		Post: NewPostService(rep.Post, rep.Image, storage, cfg),
		Auth: NewAuthService(rep.User, cfg),
	}
}
