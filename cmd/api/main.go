package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"bloglist/cmd/app"
	"bloglist/internal/config"
	handlers "bloglist/internal/handler"
	"bloglist/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(db, services, cfg)

	// личность требуется только на мутирующих маршрутах
	auth := middleware.Identity(services.Auth)

	router := mux.NewRouter()
	router.HandleFunc("/health", handler.Health).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/login", handler.Login).Methods("POST")
	api.HandleFunc("/users", handler.GetUsers).Methods("GET")
	api.HandleFunc("/users", handler.Register).Methods("POST")

	api.HandleFunc("/posts", handler.GetPosts).Methods("GET")
	api.HandleFunc("/posts", auth(handler.CreatePost)).Methods("POST")
	api.HandleFunc("/posts/stats", handler.PostStats).Methods("GET")
	api.HandleFunc("/posts/{id}", handler.GetPost).Methods("GET")
	api.HandleFunc("/posts/{id}", handler.ReplacePost).Methods("PUT")
	api.HandleFunc("/posts/{id}", auth(handler.DeletePost)).Methods("DELETE")

	api.HandleFunc("/posts/{id}/images", auth(handler.AddImage)).Methods("POST")
	api.HandleFunc("/posts/{id}/images/{imageId}", auth(handler.DeleteImage)).Methods("DELETE")

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      handlerChain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("Сервер запущен на %s", addr)
	log.Printf("База данных: %s", cfg.DB.DbNAME)

	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
