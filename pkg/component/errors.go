package component

import "errors"

// Composition-time failures are configuration errors: they abort the request
// instead of producing partially wrapped output that would hide
// misconfiguration.
var (
	// ErrUnknownComponent reports a component type path with no registered
	// constructor.
	ErrUnknownComponent = errors.New("component: unknown component type")

	// ErrUnknownDecorator reports a configured decorator name with no
	// registered constructor.
	ErrUnknownDecorator = errors.New("component: unknown decorator")
)
