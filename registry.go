package mountkit

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Registry holds the ordered set of endpoint providers collected from
// registered units. Membership is deduplicated by concrete type: a type
// registered through two overlapping units yields exactly one provider.
type Registry struct {
	logger    *zap.Logger
	providers []Provider
	seen      map[reflect.Type]struct{}
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report registrations and mounts.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Registry) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewRegistry creates an empty endpoint registry.
func NewRegistry(opts ...Option) *Registry {
	g := &Registry{
		logger: zap.NewNop(),
		seen:   make(map[reflect.Type]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RegisterAll adds every provider from the given units, skipping concrete
// types already registered. A second registration of the same type never
// changes the resolved membership for that type. Returns the registry for
// chaining. A unit that cannot be enumerated (nil unit, or a provider with
// no constructor) fails with a *DiscoveryError; a unit with zero providers
// is a valid, empty registration.
func (g *Registry) RegisterAll(units ...*Unit) (*Registry, error) {
	for _, unit := range units {
		if unit == nil {
			return g, &DiscoveryError{Unit: "<nil>", Err: errors.New("nil unit")}
		}
		for i, p := range unit.providers {
			if p.typ == nil || p.ctor == nil {
				return g, &DiscoveryError{
					Unit: unit.name,
					Err:  fmt.Errorf("provider %d has no constructor", i),
				}
			}
			if _, dup := g.seen[p.typ]; dup {
				g.logger.Debug("skipping duplicate endpoint registration",
					zap.String("unit", unit.name),
					zap.String("type", p.typ.String()),
				)
				continue
			}
			g.seen[p.typ] = struct{}{}
			g.providers = append(g.providers, p)
			g.logger.Debug("registered endpoint",
				zap.String("unit", unit.name),
				zap.String("type", p.typ.String()),
			)
		}
	}
	return g, nil
}

// Len reports the number of registered endpoint providers.
func (g *Registry) Len() int {
	return len(g.providers)
}

// ResolveAll constructs a fresh instance of every registered endpoint, in
// registration order. Instances are never cached: each call yields new
// ones. A failing constructor aborts resolution with a *ResolutionError
// naming the concrete type.
func (g *Registry) ResolveAll() ([]Endpoint, error) {
	if len(g.providers) == 0 {
		return nil, nil
	}
	endpoints := make([]Endpoint, 0, len(g.providers))
	for _, p := range g.providers {
		ep, err := p.ctor()
		if err != nil {
			return nil, &ResolutionError{Type: p.typ.String(), Err: err}
		}
		endpoints = append(endpoints, ep)
	}
	return endpoints, nil
}

// Mount resolves every registered endpoint and invokes its Routes method
// against r, in registration order. All endpoints are constructed before
// any route attaches, so a failing constructor aborts the pass with the
// surface untouched. A panic raised while an endpoint registers its routes
// is recovered and reported as a *ResolutionError. An empty registry
// mounts successfully and attaches nothing.
func (g *Registry) Mount(r chi.Router) error {
	endpoints, err := g.ResolveAll()
	if err != nil {
		return err
	}
	for i, ep := range endpoints {
		if err := g.mountOne(r, g.providers[i].typ, ep); err != nil {
			return err
		}
	}
	g.logger.Info("mounted endpoints", zap.Int("count", len(endpoints)))
	return nil
}

// MountGroup mounts every registered endpoint under a sub-group scoped to
// prefix. Routes attached through the group never appear on the top-level
// surface.
func (g *Registry) MountGroup(r chi.Router, prefix string) error {
	var mountErr error
	r.Route(prefix, func(sub chi.Router) {
		mountErr = g.Mount(sub)
	})
	return mountErr
}

func (g *Registry) mountOne(r chi.Router, typ reflect.Type, ep Endpoint) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &ResolutionError{
				Type: typ.String(),
				Err:  fmt.Errorf("route registration panicked: %v", rec),
			}
		}
	}()
	ep.Routes(r)
	return nil
}
