/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package tablestore

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pairbridge/tablestore/store"
)

// Registry holds named accessors so wiring code can hand them out without
// threading every store through every constructor. Entries are stored
// untyped; Register and AccessorFor restore type safety at the edges.
type Registry struct {
	mu        sync.RWMutex
	accessors map[string]any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		accessors: make(map[string]any),
	}
}

// Register adds a typed accessor under name. Registering the same name twice
// is an error.
func Register[T store.Entity](r *Registry, name string, accessor store.Accessor[T]) error {
	if accessor == nil {
		return fmt.Errorf("accessor %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accessors[name]; exists {
		return fmt.Errorf("accessor %q already registered", name)
	}
	r.accessors[name] = accessor
	return nil
}

// AccessorFor returns the accessor registered under name. It fails when the
// name is unknown or was registered for a different entity type.
func AccessorFor[T store.Entity](r *Registry, name string) (store.Accessor[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, exists := r.accessors[name]
	if !exists {
		return nil, fmt.Errorf("accessor %q not found", name)
	}
	typed, ok := value.(store.Accessor[T])
	if !ok {
		return nil, fmt.Errorf("accessor %q holds a different entity type", name)
	}
	return typed, nil
}

// Remove drops the accessor registered under name.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accessors[name]; !exists {
		return fmt.Errorf("accessor %q not found", name)
	}
	delete(r.accessors, name)
	return nil
}

// Names returns the registered accessor names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.accessors))
	for name := range r.accessors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
