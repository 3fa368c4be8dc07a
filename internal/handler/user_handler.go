package handlers

import (
	"encoding/json"
	"net/http"

	"bloglist/internal/repository"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required,min=3"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateUserRequest{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	}

	user, err := h.UserService.Register(r.Context(), serviceReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, user, http.StatusCreated)
}

func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, users, http.StatusOK)
}
