// Package mountkit lets each HTTP endpoint be expressed as a standalone
// unit that registers itself into a shared registry, then mounts every
// registered unit onto a chi router during startup.
//
// An endpoint unit is any type implementing Endpoint. Packages export
// their endpoint constructors as a Unit, the explicit registration analog
// of scanning a compiled module for implementations. A Registry collects
// providers from units, deduplicated by concrete type, and Mount resolves
// a fresh instance per provider and invokes its Routes method against the
// supplied router or sub-group.
//
// Registration and mounting are synchronous, startup-only operations; the
// registry is not safe for concurrent mutation and does not need to be.
package mountkit
