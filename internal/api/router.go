package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter mounts every endpoint of h. Each request gets an id and a logger
// tagged with it.
func NewRouter(h *Handlers, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	// Health
	r.Get("/healthz", h.healthz)
	r.Get("/stats", h.stats)

	// ===== Detection =====
	r.Post("/cycles", h.detectCycles)
	r.Post("/floyd", h.findCycle)
	r.Post("/normalize", h.normalize)

	return r
}
