package component

import (
	"fmt"

	"github.com/goliatone/go-pagegen/pkg/config"
)

// Chain applies the configured decorators for a component type around a base
// component. Decorator lists are resolved fresh on every Wrap call so
// configuration changes between requests are always observed.
type Chain struct {
	decorators *DecoratorRegistry
	config     *config.Components
}

// NewChain builds a chain over the decorator registry and configuration
// resolver.
func NewChain(decorators *DecoratorRegistry, cfg *config.Components) *Chain {
	return &Chain{
		decorators: decorators,
		config:     cfg,
	}
}

// Wrap returns base wrapped with the decorators configured for
// componentType. Precedence is fixed: the base component is innermost,
// global decorators (minus the type's excludes) wrap it in listed order, and
// local decorators wrap the globally decorated result in listed order,
// outermost. Excludes remove names only from the global list; a name present
// in both local and excludes is still applied from local. An unresolvable
// decorator name fails fast with ErrUnknownDecorator.
func (c *Chain) Wrap(base Component, componentType string) (Component, error) {
	if base == nil {
		return nil, fmt.Errorf("component: base component is required")
	}
	if c == nil || c.decorators == nil {
		return base, nil
	}

	global := c.config.Decorators(componentType, config.DecoratorGlobal)
	local := c.config.Decorators(componentType, config.DecoratorLocal)
	excludes := c.config.Decorators(componentType, config.DecoratorExcludes)

	names := make([]string, 0, len(global)+len(local))
	names = append(names, removeExcluded(global, excludes)...)
	names = append(names, local...)

	wrapped := base
	for _, name := range names {
		ctor, err := c.decorators.Get(name)
		if err != nil {
			return nil, fmt.Errorf("component: wrap %q: %w", componentType, err)
		}
		next := ctor(wrapped)
		if next == nil {
			return nil, fmt.Errorf("component: decorator %q returned nil for %q", name, componentType)
		}
		wrapped = next
	}
	return wrapped, nil
}

func removeExcluded(names, excludes []string) []string {
	if len(excludes) == 0 || len(names) == 0 {
		return names
	}
	excluded := make(map[string]struct{}, len(excludes))
	for _, name := range excludes {
		excluded[name] = struct{}{}
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, skip := excluded[name]; skip {
			continue
		}
		out = append(out, name)
	}
	return out
}
