// Package health exposes liveness and readiness probes as an endpoint unit.
package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mountkit/mountkit/internal/respond"
)

// Endpoint serves the health probe routes.
type Endpoint struct{}

// New constructs the health endpoint unit.
func New() *Endpoint {
	return &Endpoint{}
}

// Routes attaches the probe routes.
func (e *Endpoint) Routes(r chi.Router) {
	r.Get("/healthz", e.healthz)
	r.Get("/readyz", e.readyz)
}

func (e *Endpoint) healthz(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (e *Endpoint) readyz(w http.ResponseWriter, _ *http.Request) {
	// The note store has no liveness signal of its own; check downstreams
	// here when one grows one.
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
