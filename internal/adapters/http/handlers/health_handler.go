package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/identifiers/internal/buildinfo"
	"github.com/jsamuelsen11/identifiers/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

type livenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler serves the liveness and readiness checks. Their responses are
// never cached.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It reports the running build and never
// consults the registry.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, livenessResponse{
		Status:  statusOK,
		Version: buildinfo.ResolvedVersion(),
	})
}

// Readiness handles GET /health/ready: 200 when every registered check
// passes, 503 with the failing check messages otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := readinessResponse{Status: statusReady, Checks: make(map[string]string)}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}
