// Package api assembles the HTTP interface for the notesd service.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mountkit/mountkit"
	"github.com/mountkit/mountkit/internal/config"
	"github.com/mountkit/mountkit/internal/endpoints"
	"github.com/mountkit/mountkit/internal/metrics"
	"github.com/mountkit/mountkit/internal/store"
)

// Server wires middleware and the registered endpoint units into a router.
type Server struct {
	router chi.Router
	cfg    config.Config
	logger *zap.Logger
}

// NewServer builds the router: middleware first, then the system unit
// mounted on the top-level surface and the v1 unit under the /v1 group.
// Any registration or mount failure is fatal; the caller should abort
// startup.
func NewServer(cfg config.Config, st store.NoteStore, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(recoverMiddleware(logger))
	if cfg.Metrics.Enabled {
		metrics.Init()
		r.Use(metrics.Middleware)
	}
	if cfg.Auth.Enabled {
		r.Use(apiKeyMiddleware(cfg.Auth.APIKey))
	}

	system := mountkit.NewRegistry(mountkit.WithLogger(logger))
	if _, err := system.RegisterAll(endpoints.System(cfg.Metrics.Enabled)); err != nil {
		return nil, fmt.Errorf("register system endpoints: %w", err)
	}
	if err := system.Mount(r); err != nil {
		return nil, fmt.Errorf("mount system endpoints: %w", err)
	}

	v1 := mountkit.NewRegistry(mountkit.WithLogger(logger))
	if _, err := v1.RegisterAll(endpoints.V1(st, logger)); err != nil {
		return nil, fmt.Errorf("register v1 endpoints: %w", err)
	}
	if err := v1.MountGroup(r, "/v1"); err != nil {
		return nil, fmt.Errorf("mount v1 endpoints: %w", err)
	}

	return &Server{router: r, cfg: cfg, logger: logger}, nil
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}
