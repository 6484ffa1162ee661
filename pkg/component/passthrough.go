package component

import "context"

// Passthrough forwards the full Component capability to the wrapped
// instance. Decorators embed it and override only the operations they
// intercept, so delegation of everything else is guaranteed by construction.
type Passthrough struct {
	next Component
}

// NewPassthrough wraps next.
func NewPassthrough(next Component) Passthrough {
	return Passthrough{next: next}
}

// Unwrap exposes the wrapped component, mainly for tests and diagnostics.
func (p Passthrough) Unwrap() Component {
	return p.next
}

// Type implements Component.
func (p Passthrough) Type() string {
	if p.next == nil {
		return ""
	}
	return p.next.Type()
}

// Render implements Component.
func (p Passthrough) Render(ctx context.Context, scope *Scope, uid string) (string, error) {
	if p.next == nil {
		return "", nil
	}
	return p.next.Render(ctx, scope, uid)
}

// RewriteCached implements Component.
func (p Passthrough) RewriteCached(fragmentHTML string, scope *Scope, uid string) (string, error) {
	if p.next == nil {
		return fragmentHTML, nil
	}
	return p.next.RewriteCached(fragmentHTML, scope, uid)
}

// HandleSubmit implements Component.
func (p Passthrough) HandleSubmit(ctx context.Context, scope *Scope) error {
	if p.next == nil {
		return nil
	}
	return p.next.HandleSubmit(ctx, scope)
}
