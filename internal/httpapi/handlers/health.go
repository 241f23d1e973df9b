package handlers

import (
	"net/http"

	"github.com/numbox/random-number-service/internal/config"
)

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health responds with basic service status.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: config.ServiceName,
	})
}
