// Package endpoints assembles the service's endpoint units for discovery.
package endpoints

import (
	"go.uber.org/zap"

	"github.com/mountkit/mountkit"
	"github.com/mountkit/mountkit/internal/endpoints/health"
	"github.com/mountkit/mountkit/internal/endpoints/notes"
	"github.com/mountkit/mountkit/internal/metrics"
	"github.com/mountkit/mountkit/internal/store"
)

// System returns the unit of endpoints mounted on the top-level surface.
func System(includeMetrics bool) *mountkit.Unit {
	unit := mountkit.NewUnit("system",
		mountkit.Static(health.New),
	)
	if includeMetrics {
		unit.Add(mountkit.Static(metrics.NewEndpoint))
	}
	return unit
}

// V1 returns the unit of endpoints mounted under the /v1 group.
func V1(st store.NoteStore, logger *zap.Logger) *mountkit.Unit {
	return mountkit.NewUnit("v1",
		mountkit.Provide(func() (*notes.Endpoint, error) {
			return notes.New(st, logger)
		}),
	)
}
