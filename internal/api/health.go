package api

import "net/http"

type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler answers liveness checks. It reports the process as
// running regardless of model state; model readiness is exported as a
// metric instead.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{Status: "ML Service is running"})
}
