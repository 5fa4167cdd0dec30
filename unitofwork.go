/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitysql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/suparena/entitysql/datastore"
	"github.com/suparena/entitysql/datastore/sqlite"
	"github.com/suparena/entitysql/errors"
	"github.com/suparena/entitysql/registry"
)

// Coordinator groups mapper operations into units of work. It lazily
// constructs and memoizes one mapper per entity type for its own lifetime
// (keyed by entity-type identity, not by transaction) and routes every
// statement through the currently open transaction, if any.
//
// A coordinator owns a single logical connection. Concurrent RunAtomic
// invocations against the same coordinator must be serialized by the caller.
type Coordinator struct {
	db  *sql.DB
	reg *registry.Registry
	log *slog.Logger

	mu      sync.Mutex
	mappers map[reflect.Type]any

	tx    *sql.Tx
	cache *stmtCache
}

func newCoordinator(db *sql.DB, reg *registry.Registry, log *slog.Logger) *Coordinator {
	return &Coordinator{
		db:      db,
		reg:     reg,
		log:     log,
		mappers: make(map[reflect.Type]any),
	}
}

// Executor implements datastore.ExecutorSource: inside RunAtomic it yields
// the transaction (through the statement cache), otherwise the connection.
func (c *Coordinator) Executor() datastore.Executor {
	if c.tx != nil {
		return c.cache
	}
	return c.db
}

// MapperFor returns the coordinator's mapper for type T, constructing it on
// first use. The same instance is reused within and across transactions.
func MapperFor[T any](c *Coordinator) (*sqlite.Mapper[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.mappers[t]; ok {
		return m.(*sqlite.Mapper[T]), nil
	}
	m, err := sqlite.NewMapper[T](c.reg, c)
	if err != nil {
		return nil, err
	}
	c.mappers[t] = m
	return m, nil
}

// RunAtomic executes work inside a single storage-engine transaction. Every
// write made through any mapper obtained from this coordinator during the
// call commits together on success and rolls back together when work returns
// an error or panics.
//
// Nesting is not supported: calling RunAtomic from inside work fails with
// ErrNestedTransaction rather than silently flattening, so a partial
// rollback can never be mistaken for a committed inner unit.
func (c *Coordinator) RunAtomic(ctx context.Context, work func(*Coordinator) error) error {
	if c.tx != nil {
		return fmt.Errorf("run atomic: %w", errors.ErrNestedTransaction)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStorageError("begin transaction", err)
	}

	cache := newStmtCache(tx)
	c.tx, c.cache = tx, cache
	defer func() {
		cache.close()
		c.tx, c.cache = nil, nil
		// No-op after a successful commit; rolls back on error or panic.
		_ = tx.Rollback()
	}()

	if err := work(c); err != nil {
		c.log.Debug("unit of work rolled back", "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStorageError("commit transaction", err)
	}
	return nil
}
