package canvas

import (
	"fmt"
	"strings"
	"sync"
)

// Registry maps ids to surfaces so that surfaces can be looked up by
// selector. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[string]*Surface
}

// DefaultRegistry is used unless WithRegistry says otherwise.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]*Surface)}
}

// Register stores s under id, replacing any previous surface.
func (r *Registry) Register(id string, s *Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surfaces[id] = s
}

// Unregister removes id.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.surfaces, id)
}

// Lookup resolves a selector of the form "#id" or "id".
func (r *Registry) Lookup(selector string) (*Surface, error) {
	id := strings.TrimPrefix(strings.TrimSpace(selector), "#")
	r.mu.RLock()
	s, ok := r.surfaces[id]
	r.mu.RUnlock()
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: %q", ErrSelectorNotFound, selector)
	}
	return s, nil
}
