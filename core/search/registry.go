// ABOUTME: Read-only source registry mapping source keys to implementations
// ABOUTME: Built once at startup, preserves registration order

package search

import "prixmalin-api/core/interfaces"

// Registry is the fixed mapping from source key to Source. It is built
// once at startup and read-only afterwards; registration order decides
// the order of product blocks in aggregated results.
type Registry struct {
	keys    []string
	sources map[string]interfaces.Source
}

// NewRegistry builds a registry from the given sources in order.
// A source registered twice under the same key replaces the earlier
// one without changing its position.
func NewRegistry(sources ...interfaces.Source) *Registry {
	r := &Registry{
		sources: make(map[string]interfaces.Source, len(sources)),
	}
	for _, src := range sources {
		key := src.Key()
		if _, exists := r.sources[key]; !exists {
			r.keys = append(r.keys, key)
		}
		r.sources[key] = src
	}
	return r
}

// Keys returns the registered source keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Get returns the source registered under key.
func (r *Registry) Get(key string) (interfaces.Source, bool) {
	src, ok := r.sources[key]
	return src, ok
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return len(r.keys)
}
