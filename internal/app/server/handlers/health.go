package handlers

import (
	"encoding/json"
	"net/http"
)

type connectionCounter interface {
	Count() int
}

type HealthHandler struct {
	registry connectionCounter
}

func NewHealthHandler(registry connectionCounter) *HealthHandler {
	return &HealthHandler{registry: registry}
}

func (h *HealthHandler) Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":      "ok",
		"connections": h.registry.Count(),
	})
}
