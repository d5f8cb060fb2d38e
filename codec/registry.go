package codec

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages the available transforms
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]Transform
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{transforms: make(map[string]Transform)}
}

var defaultRegistry = NewRegistry()

// Register registers a transform under its name in the default registry
func Register(t Transform) {
	defaultRegistry.Register(t)
}

// Get retrieves a transform by name from the default registry
func Get(name string) (Transform, error) {
	return defaultRegistry.Get(name)
}

// List returns all transforms of the default registry, sorted by name
func List() []Transform {
	return defaultRegistry.List()
}

// Register registers a transform under its name, replacing any previous one
func (r *Registry) Register(t Transform) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transforms[t.Name()] = t
}

// Get retrieves a transform by name
func (r *Registry) Get(name string) (Transform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transforms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTransformNotFound, name)
	}
	return t, nil
}

// List returns all registered transforms sorted by name
func (r *Registry) List() []Transform {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Transform, 0, len(r.transforms))
	for _, t := range r.transforms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
