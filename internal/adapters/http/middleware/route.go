package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routePattern returns the chi route pattern matched for r, such as
// "/api/v1/dois/extract", or the raw path when r was not routed by chi.
// It is only complete after the downstream handler has run.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
