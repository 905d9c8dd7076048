package api

import (
	"net/http"
	"time"

	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

const apiVersion = "1.0.0"

// Health is the liveness probe.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} models.HealthResponse
// @Router       /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, sm.HealthResponse{
		Status:    "OK",
		Message:   "FBIV VPN API is running",
		Timestamp: time.Now().UTC(),
		Database:  "SQLite",
		Version:   apiVersion,
	})
}
