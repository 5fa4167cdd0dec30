/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DataStore
// interface for testing consumers without a database file.
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/suparena/entitysql/errors"
	"github.com/suparena/entitysql/storagemodels"
)

// DataStore is a mock implementation of datastore.DataStore[T] for testing.
// Behavior is customized through the With* builder methods.
type DataStore[T any] struct {
	mu        sync.RWMutex
	data      map[string]T
	order     []string
	keyFunc   func(T) string
	matchFunc func(T, *storagemodels.Criteria) bool
	applyFunc func(*T, *storagemodels.Updates)
	saveErr   error
	deleteErr error
	updateErr error
}

// New creates a new mock DataStore.
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data: make(map[string]T),
	}
}

// WithKeyFunc sets the function that extracts the primary key from an entity.
// Save, FindByKey and DeleteByKey require it.
func (m *DataStore[T]) WithKeyFunc(f func(T) string) *DataStore[T] {
	m.keyFunc = f
	return m
}

// WithMatchFunc sets the predicate used to evaluate non-empty criteria.
func (m *DataStore[T]) WithMatchFunc(f func(T, *storagemodels.Criteria) bool) *DataStore[T] {
	m.matchFunc = f
	return m
}

// WithApplyFunc sets the function that applies an update-field set to an entity.
func (m *DataStore[T]) WithApplyFunc(f func(*T, *storagemodels.Updates)) *DataStore[T] {
	m.applyFunc = f
	return m
}

// WithSaveError makes Save operations return an error.
func (m *DataStore[T]) WithSaveError(err error) *DataStore[T] {
	m.saveErr = err
	return m
}

// WithDeleteError makes delete operations return an error.
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteErr = err
	return m
}

// WithUpdateError makes UpdateWhere operations return an error.
func (m *DataStore[T]) WithUpdateError(err error) *DataStore[T] {
	m.updateErr = err
	return m
}

// FindAll returns every stored entity in insertion order.
func (m *DataStore[T]) FindAll(ctx context.Context) ([]T, error) {
	return m.FindWhere(ctx, nil)
}

// FindWhere returns the entities matching the criteria.
func (m *DataStore[T]) FindWhere(_ context.Context, criteria *storagemodels.Criteria) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []T{}
	for _, key := range m.order {
		entity := m.data[key]
		ok, err := m.matches(entity, criteria)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, entity)
		}
	}
	return out, nil
}

// FindOne returns the first match, or nil when nothing matches.
func (m *DataStore[T]) FindOne(ctx context.Context, criteria *storagemodels.Criteria) (*T, error) {
	matches, err := m.FindWhere(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

// FindByKey returns the entity stored under the given key, or nil.
func (m *DataStore[T]) FindByKey(_ context.Context, key any) (*T, error) {
	if m.keyFunc == nil {
		return nil, fmt.Errorf("mock: %w", errors.ErrNoPrimaryKey)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if entity, exists := m.data[fmt.Sprint(key)]; exists {
		return &entity, nil
	}
	return nil, nil
}

// Save upserts the entity under its extracted key.
func (m *DataStore[T]) Save(_ context.Context, entity *T) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.keyFunc == nil {
		return fmt.Errorf("mock: %w", errors.ErrNoPrimaryKey)
	}
	if entity == nil {
		return fmt.Errorf("mock: nil entity")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.keyFunc(*entity)
	if _, exists := m.data[key]; !exists {
		m.order = append(m.order, key)
	}
	m.data[key] = *entity
	return nil
}

// UpdateWhere applies the field set to every match and returns the count.
func (m *DataStore[T]) UpdateWhere(_ context.Context, criteria *storagemodels.Criteria, updates *storagemodels.Updates) (int64, error) {
	if m.updateErr != nil {
		return 0, m.updateErr
	}
	if updates.Len() == 0 {
		return 0, fmt.Errorf("mock: %w", errors.ErrNoUpdateFields)
	}
	if m.applyFunc == nil {
		return 0, fmt.Errorf("mock: no apply function configured")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, key := range m.order {
		entity := m.data[key]
		ok, err := m.matches(entity, criteria)
		if err != nil {
			return 0, err
		}
		if ok {
			m.applyFunc(&entity, updates)
			m.data[key] = entity
			n++
		}
	}
	return n, nil
}

// DeleteWhere removes every match and returns the count.
func (m *DataStore[T]) DeleteWhere(_ context.Context, criteria *storagemodels.Criteria) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	kept := m.order[:0]
	for _, key := range m.order {
		entity := m.data[key]
		ok, err := m.matches(entity, criteria)
		if err != nil {
			return 0, err
		}
		if ok {
			delete(m.data, key)
			n++
		} else {
			kept = append(kept, key)
		}
	}
	m.order = kept
	return n, nil
}

// DeleteByKey removes the entity stored under the given key.
func (m *DataStore[T]) DeleteByKey(_ context.Context, key any) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if m.keyFunc == nil {
		return fmt.Errorf("mock: %w", errors.ErrNoPrimaryKey)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	k := fmt.Sprint(key)
	if _, exists := m.data[k]; !exists {
		return nil
	}
	delete(m.data, k)
	for i, existing := range m.order {
		if existing == k {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count returns the number of stored entities.
func (m *DataStore[T]) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.data)), nil
}

func (m *DataStore[T]) matches(entity T, criteria *storagemodels.Criteria) (bool, error) {
	if criteria.Len() == 0 {
		return true, nil
	}
	if m.matchFunc == nil {
		return false, fmt.Errorf("mock: no match function configured for criteria")
	}
	return m.matchFunc(entity, criteria), nil
}
