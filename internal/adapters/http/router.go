// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/identifiers/internal/adapters/http/handlers"
)

// Handlers groups the handlers mounted by NewRouter. Document is nil when
// remote document fetching is disabled, and its route is then not mounted.
type Handlers struct {
	DOI      *handlers.DOIHandler
	Document *handlers.DocumentHandler
	Health   *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with the health and DOI routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1/dois", func(r chi.Router) {
		r.Get("/validate", h.DOI.ValidateQuery)
		r.Post("/validate", h.DOI.Validate)
		r.Post("/extract", h.DOI.Extract)
		r.Post("/extract/batch", h.DOI.ExtractBatch)
		if h.Document != nil {
			r.Post("/extract/url", h.Document.ExtractURL)
		}
	})

	return r
}
