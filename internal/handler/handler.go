package handlers

import (
	"github.com/go-playground/validator/v10"

	"bloglist/internal/config"
	"bloglist/internal/database"
	"bloglist/internal/service"
)

type Handlers struct {
	UserService service.UserService
	AuthService service.AuthService
	PostService service.PostService
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(db *database.DB, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserService: service.User,
		AuthService: service.Auth,
		PostService: service.Post,
		DB:          db,
		Cfg:         config,
		Validate:    validator.New(),
	}
}
