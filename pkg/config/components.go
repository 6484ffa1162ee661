package config

import "strings"

// DecoratorKind selects one of the three decorator name sources resolved per
// component type.
type DecoratorKind string

const (
	// DecoratorGlobal names framework-provided decorators applied to every
	// component unless excluded.
	DecoratorGlobal DecoratorKind = "global"
	// DecoratorLocal names component-specific decorators supplied by the
	// component's own namespace.
	DecoratorLocal DecoratorKind = "local"
	// DecoratorExcludes names global decorators a component type opts out
	// of. Excludes never remove names contributed by the local list.
	DecoratorExcludes DecoratorKind = "excludes"
)

const (
	componentsPrefix  = "components"
	childrenKey       = "children"
	decoratorsKey     = "decorators"
	globalFallbackKey = "components/decorators/global"
)

// Components resolves, for a component type, the ordered sub-component names
// and the three decorator lists. It is a pure lookup over the injected Store;
// nothing is cached between calls, so configuration changes between requests
// are always observed.
type Components struct {
	store    Store
	defaults map[string][]string
}

// NewComponents builds a resolver over the supplied store. A nil store yields
// defaults for every lookup.
func NewComponents(store Store) *Components {
	return &Components{
		store:    store,
		defaults: make(map[string][]string),
	}
}

// SetDefaultChildren registers the fallback child list used when the store
// carries no override for componentType.
func (c *Components) SetDefaultChildren(componentType string, names ...string) {
	if c == nil {
		return
	}
	componentType = normalizeKey(componentType)
	if componentType == "" {
		return
	}
	c.defaults[componentType] = append([]string(nil), names...)
}

// Children returns the ordered sub-component names configured for
// componentType, falling back to the registered type defaults. Order is
// significant: it determines render concatenation order.
func (c *Components) Children(componentType string) []string {
	if c == nil {
		return nil
	}
	componentType = normalizeKey(componentType)
	fallback := c.defaults[componentType]
	if c.store == nil {
		return append([]string(nil), fallback...)
	}
	key := componentsPrefix + "/" + componentType + "/" + childrenKey
	return cleanNames(c.store.Strings(key, fallback))
}

// Setting returns a scalar component setting stored under
// components/<type>/<name>, falling back when unset.
func (c *Components) Setting(componentType, name, fallback string) string {
	if c == nil || c.store == nil {
		return fallback
	}
	componentType = normalizeKey(componentType)
	name = normalizeKey(name)
	if componentType == "" || name == "" {
		return fallback
	}
	return c.store.String(componentsPrefix+"/"+componentType+"/"+name, fallback)
}

// Decorators returns the ordered decorator names of the given kind for
// componentType. The global kind falls back to the framework-wide list when
// the type carries no override; local and excludes default to empty.
func (c *Components) Decorators(componentType string, kind DecoratorKind) []string {
	if c == nil || c.store == nil {
		return nil
	}
	componentType = normalizeKey(componentType)
	key := componentsPrefix + "/" + componentType + "/" + decoratorsKey + "/" + string(kind)

	var fallback []string
	if kind == DecoratorGlobal {
		fallback = c.store.Strings(globalFallbackKey, nil)
	}
	return cleanNames(c.store.Strings(key, fallback))
}

func cleanNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
