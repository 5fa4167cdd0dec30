/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/entitysql/errors"
)

// Registry owns the descriptor for every declared entity type, keyed by
// entity-type identity. It is an explicit instance threaded through by the
// orchestrator, not a package-level singleton, so tests can substitute their
// own.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]any
	order   []reflect.Type
	schemas map[reflect.Type]TableSchema
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		entries: make(map[reflect.Type]any),
		schemas: make(map[reflect.Type]TableSchema),
	}
}

// Register stores the descriptor for type T. Registering the same type twice
// is an error; descriptors are immutable once stored.
func Register[T any](r *Registry, desc *EntityDescriptor[T]) error {
	if desc == nil {
		return fmt.Errorf("register: nil descriptor")
	}
	t := typeOf[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[t]; exists {
		return fmt.Errorf("register %s: %w", t, errors.ErrAlreadyRegistered)
	}
	r.entries[t] = desc
	r.order = append(r.order, t)
	r.schemas[t] = desc.Schema()
	return nil
}

// DescriptorFor retrieves the descriptor registered for type T. It fails with
// ErrNotRegistered when the type was never registered or declares no columns.
func DescriptorFor[T any](r *Registry) (*EntityDescriptor[T], error) {
	t := typeOf[T]()

	r.mu.RLock()
	entry, exists := r.entries[t]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NewNotRegisteredError(t.String())
	}
	desc := entry.(*EntityDescriptor[T])
	if len(desc.columns) == 0 {
		return nil, errors.NewNotRegisteredError(t.String())
	}
	return desc, nil
}

// Schemas returns the table schema of every registered entity in
// registration order. The orchestrator walks it during schema
// synchronization.
func (r *Registry) Schemas() []TableSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]TableSchema, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.schemas[t])
	}
	return out
}

// Len returns the number of registered entity types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
