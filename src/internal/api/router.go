package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterOptions toggles optional middleware.
type RouterOptions struct {
	// PrivateOnly rejects clients outside private and loopback ranges.
	PrivateOnly bool
}

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(Logger)
	if opts.PrivateOnly {
		r.Use(PrivateSubnetOnly)
	}
	r.Use(JSONContentType)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/lookup/{address}", h.Lookup)
		r.Get("/routes", h.GetRoutes)
		r.Get("/parse", h.Parse)
		r.Post("/match", h.Match)
		r.Get("/health", h.CheckHealth)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "endpoint "+r.URL.Path)
	})

	return r
}
