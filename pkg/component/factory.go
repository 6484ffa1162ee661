package component

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-pagegen/pkg/config"
)

// DefaultSubName is the canonical sub-name used when a caller passes none.
const DefaultSubName = "default"

// Factory resolves component type paths to decorated, ready-to-use component
// instances. Every Create call performs full resolution: constructors run
// fresh and decorator lists are re-read, because callers may legitimately
// configure different chains per call site even for the same type.
type Factory struct {
	registry *Registry
	chain    *Chain
	config   *config.Components
	runtime  *Runtime
}

// NewFactory wires the factory into rt so constructors can resolve their own
// children through it.
func NewFactory(registry *Registry, decorators *DecoratorRegistry, cfg *config.Components, rt *Runtime) *Factory {
	if rt == nil {
		rt = &Runtime{}
	}
	f := &Factory{
		registry: registry,
		chain:    NewChain(decorators, cfg),
		config:   cfg,
		runtime:  rt,
	}
	rt.Config = cfg
	rt.Factory = f
	return f
}

// Runtime exposes the shared runtime handed to constructors.
func (f *Factory) Runtime() *Runtime {
	if f == nil {
		return nil
	}
	return f.runtime
}

// Create resolves the constructor for componentType (or its
// subName-qualified variant), instantiates it, and passes the instance
// through the decorator chain. An empty subName tries the bare type first
// and then the canonical "type/default" variant. Unresolvable types and
// decorator names are fatal configuration errors.
func (f *Factory) Create(componentType, subName string) (Component, error) {
	if f == nil || f.registry == nil {
		return nil, fmt.Errorf("component: factory registry is nil")
	}

	ctor, err := f.resolve(componentType, subName)
	if err != nil {
		return nil, err
	}

	base, err := ctor(f.runtime)
	if err != nil {
		return nil, fmt.Errorf("component: construct %q: %w", componentType, err)
	}
	if base == nil {
		return nil, fmt.Errorf("component: constructor for %q returned nil", componentType)
	}

	return f.chain.Wrap(base, componentType)
}

// ChildrenOf maps the configured sub-component names of componentType
// through Create, preserving configured order. This is how a parent's
// configured sub-parts become real, decorated instances without the parent
// knowing concrete types.
func (f *Factory) ChildrenOf(componentType string) ([]Component, error) {
	if f == nil {
		return nil, fmt.Errorf("component: factory is nil")
	}

	names := f.config.Children(componentType)
	if len(names) == 0 {
		return nil, nil
	}

	children := make([]Component, 0, len(names))
	for _, name := range names {
		// Bare names resolve relative to the parent type; names containing a
		// slash are absolute type paths.
		childType := name
		if !strings.Contains(name, "/") {
			childType = componentType + "/" + name
		}
		child, err := f.Create(childType, "")
		if err != nil {
			return nil, fmt.Errorf("component: child %q of %q: %w", name, componentType, err)
		}
		children = append(children, child)
	}
	return children, nil
}

// RenderChildren renders the configured children of componentType in
// child-list order and returns the concatenated output. Output order always
// follows configured order; it is caller-visible DOM order.
func RenderChildren(ctx context.Context, f *Factory, componentType string, scope *Scope, uid string) (string, error) {
	if f == nil {
		return "", nil
	}
	children, err := f.ChildrenOf(componentType)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, child := range children {
		rendered, err := child.Render(ctx, scope, uid)
		if err != nil {
			return "", fmt.Errorf("component: render child %q: %w", child.Type(), err)
		}
		out.WriteString(rendered)
	}
	return out.String(), nil
}

func (f *Factory) resolve(componentType, subName string) (Constructor, error) {
	componentType = normalizeType(componentType)
	if componentType == "" {
		return nil, fmt.Errorf("component: component type is required")
	}

	if subName != "" {
		return f.registry.Get(componentType + "/" + subName)
	}

	if ctor, err := f.registry.Get(componentType); err == nil {
		return ctor, nil
	}
	return f.registry.Get(componentType + "/" + DefaultSubName)
}
