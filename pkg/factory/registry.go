package factory

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps names to factories of any model type.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]any
}

// DefaultRegistry is used by factories created without WithRegistry.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]any)}
}

// Define stores f under name, replacing any previous factory, and returns f.
func Define[T Model](r *Registry, name string, f *Factory[T]) *Factory[T] {
	f.name = name
	r.define(name, f)
	return f
}

func (r *Registry) define(name string, f any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Has reports whether a factory is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name. It fails with
// ErrFactoryNotFound or, when the factory builds another model type,
// ErrFactoryType.
func Lookup[T Model](r *Registry, name string) (*Factory[T], error) {
	r.mu.RLock()
	raw, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFactoryNotFound, name)
	}
	f, ok := raw.(*Factory[T])
	if !ok {
		return nil, fmt.Errorf("%w: %q builds %T", ErrFactoryType, name, raw)
	}
	return f, nil
}
