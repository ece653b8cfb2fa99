package mountkit

import (
	"reflect"

	"github.com/go-chi/chi/v5"
)

// Endpoint is the capability contract implemented by a unit of routing
// logic. Routes attaches the unit's routes to r, which is either the
// application's top-level router or a sub-group scoped to a path prefix.
// There is no error channel: a failure while attaching routes (for example
// the router rejecting a conflicting pattern) propagates synchronously to
// the mount pass.
type Endpoint interface {
	Routes(r chi.Router)
}

// Provider describes how to construct one concrete Endpoint implementation.
// The concrete type is captured at compile time, so building a provider
// never instantiates the endpoint.
type Provider struct {
	typ  reflect.Type
	ctor func() (Endpoint, error)
}

// Type returns the concrete endpoint type the provider constructs.
func (p Provider) Type() reflect.Type {
	return p.typ
}

// Provide wraps a fallible constructor for the concrete endpoint type E.
// The constructor runs once per resolution, never at registration.
func Provide[E Endpoint](ctor func() (E, error)) Provider {
	return Provider{
		typ: reflect.TypeFor[E](),
		ctor: func() (Endpoint, error) {
			ep, err := ctor()
			if err != nil {
				return nil, err
			}
			return ep, nil
		},
	}
}

// Static wraps a constructor that cannot fail.
func Static[E Endpoint](ctor func() E) Provider {
	return Provide(func() (E, error) {
		return ctor(), nil
	})
}

// Unit is a named, ordered list of endpoint providers. A package exposes
// its endpoints as a Unit so an application can register them all in one
// call.
type Unit struct {
	name      string
	providers []Provider
}

// NewUnit creates a unit with the given providers in order.
func NewUnit(name string, providers ...Provider) *Unit {
	u := &Unit{name: name}
	u.providers = append(u.providers, providers...)
	return u
}

// Name returns the unit's name, used in discovery error messages.
func (u *Unit) Name() string {
	return u.name
}

// Add appends a provider and returns the unit for chaining.
func (u *Unit) Add(p Provider) *Unit {
	u.providers = append(u.providers, p)
	return u
}

// Providers returns a copy of the unit's provider list in registration
// order.
func (u *Unit) Providers() []Provider {
	out := make([]Provider, len(u.providers))
	copy(out, u.providers)
	return out
}
