package mountkit

import "fmt"

// DiscoveryError reports a unit that could not be enumerated during
// registration. It is fatal: no provider from the offending unit is
// registered.
type DiscoveryError struct {
	Unit string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover unit %q: %v", e.Unit, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// ResolutionError reports an endpoint that could not be constructed, or
// whose registration call failed, during a mount pass. Type names the
// concrete endpoint type.
type ResolutionError struct {
	Type string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve endpoint %s: %v", e.Type, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
