package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/svcfmt/fieldfmt/internal/fieldfmt"
)

// Registry stores named schemas for lookup by the presentation layer.
// Registration happens at startup; lookups may run concurrently.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]Schema)}
}

// Register stores a schema under its name, replacing any previous
// registration.
func (r *Registry) Register(s Schema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[s.Name] = s
}

// Get fetches a registered schema.
func (r *Registry) Get(name string) (Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	if !ok {
		return Schema{}, fmt.Errorf("no schema registered for %q", name)
	}
	return s, nil
}

// Render looks up a schema by name and formats record through it.
func (r *Registry) Render(f *fieldfmt.Formatter, name string, record map[string]any) (map[string]string, error) {
	s, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return s.Render(f, record)
}

// Names returns the registered schema names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
