package component

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Constructor builds a fresh component instance for one render call.
// Constructors receive the shared runtime; per-component dependencies are
// closed over at registration time.
type Constructor func(rt *Runtime) (Component, error)

// Registry maps slash-delimited component type paths to constructors.
// Sub-name-qualified variants register under "type/subname"; the canonical
// sub-name is "default".
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

// Register adds a constructor for componentType. Duplicate registrations
// return an error.
func (r *Registry) Register(componentType string, ctor Constructor) error {
	if ctor == nil {
		return fmt.Errorf("component: constructor is required")
	}
	componentType = normalizeType(componentType)
	if componentType == "" {
		return fmt.Errorf("component: component type is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[componentType]; exists {
		return fmt.Errorf("component: type %q already registered", componentType)
	}

	r.constructors[componentType] = ctor
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(componentType string, ctor Constructor) {
	if err := r.Register(componentType, ctor); err != nil {
		panic(err)
	}
}

// Get retrieves the constructor registered under componentType.
func (r *Registry) Get(componentType string) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.constructors[normalizeType(componentType)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, componentType)
	}
	return ctor, nil
}

// Has reports whether componentType is registered.
func (r *Registry) Has(componentType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.constructors[normalizeType(componentType)]
	return ok
}

// List returns the sorted registered type paths.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.constructors))
	for componentType := range r.constructors {
		types = append(types, componentType)
	}
	sort.Strings(types)
	return types
}

func normalizeType(componentType string) string {
	return strings.Trim(strings.TrimSpace(componentType), "/")
}
