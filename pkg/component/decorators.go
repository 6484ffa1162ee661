package component

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DecoratorConstructor builds a decorator around the component it wraps. The
// returned value must satisfy the full Component capability and delegate
// every operation it does not intercept unchanged to next; a decorator that
// fails to delegate silently breaks the tree.
type DecoratorConstructor func(next Component) Component

// DecoratorRegistry maps decorator names to constructors, populated at
// process start. DecoratorChain looks names up here and fails fast on a
// miss.
type DecoratorRegistry struct {
	mu           sync.RWMutex
	constructors map[string]DecoratorConstructor
}

// NewDecoratorRegistry creates an empty decorator registry.
func NewDecoratorRegistry() *DecoratorRegistry {
	return &DecoratorRegistry{
		constructors: make(map[string]DecoratorConstructor),
	}
}

// Register adds a decorator constructor under name. Duplicate names return
// an error.
func (r *DecoratorRegistry) Register(name string, ctor DecoratorConstructor) error {
	if ctor == nil {
		return fmt.Errorf("component: decorator constructor is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("component: decorator name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[name]; exists {
		return fmt.Errorf("component: decorator %q already registered", name)
	}

	r.constructors[name] = ctor
	return nil
}

// MustRegister panics on registration failure.
func (r *DecoratorRegistry) MustRegister(name string, ctor DecoratorConstructor) {
	if err := r.Register(name, ctor); err != nil {
		panic(err)
	}
}

// Get retrieves the constructor registered under name.
func (r *DecoratorRegistry) Get(name string) (DecoratorConstructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.constructors[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDecorator, name)
	}
	return ctor, nil
}

// List returns the sorted registered decorator names.
func (r *DecoratorRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
