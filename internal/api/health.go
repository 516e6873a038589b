package api

import (
	"net/http"

	"github.com/notepadhq/notepad-backend/internal/api/respond"
)

// ServiceVersion is reported by the banner endpoint.
const ServiceVersion = "1.0.0"

// HealthHandler handles the banner and health check endpoints.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Banner handles GET /
func (h *HealthHandler) Banner(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"status":   "Backend running successfully",
		"service":  "Notepad Backend API with AI",
		"version":  ServiceVersion,
		"ai_model": "pollinations.ai text completion",
	})
}

// CheckHealth handles GET /health
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
