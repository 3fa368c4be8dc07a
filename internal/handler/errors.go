package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bloglist/internal/models"
	"bloglist/internal/stats"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteJSON - функция для успешных ответов
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError переводит доменную ошибку в HTTP статус
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrDuplicateUsername):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrMissingCredential),
		errors.Is(err, models.ErrInvalidCredential),
		errors.Is(err, models.ErrUnknownUser):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, stats.ErrEmptyInput):
		WriteError(w, err.Error(), http.StatusNotFound)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
