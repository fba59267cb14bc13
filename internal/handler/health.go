package handler

import (
	"net/http"
	"time"

	"github.com/forgo/users/api/internal/model"
)

// WelcomeMessage is served at the root path
const WelcomeMessage = "Welcome to the Users API! Try /api/v1/health for health check."

// HealthHandler serves liveness endpoints
type HealthHandler struct {
	service string
	version string
	now     func() time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service, version string) *HealthHandler {
	return &HealthHandler{service: service, version: version, now: time.Now}
}

// Health handles GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, model.HealthResponse{
		Status:    "healthy",
		Timestamp: model.Timestamp(h.now()),
		Service:   h.service,
		Version:   h.version,
	})
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(WelcomeMessage))
}
