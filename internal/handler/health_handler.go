package handlers

import "net/http"

type HealthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
}
