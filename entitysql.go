/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitysql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/suparena/entitysql/config"
	"github.com/suparena/entitysql/datastore/sqlite"
	"github.com/suparena/entitysql/errors"
	"github.com/suparena/entitysql/registry"
	"github.com/suparena/entitysql/sqlgen"
)

var connectionPragmas = []string{
	`PRAGMA journal_mode=WAL`,
	`PRAGMA foreign_keys=ON`,
	`PRAGMA busy_timeout=5000`,
}

// EntityManager is the orchestrator: it owns the registry and the single
// logical connection, optionally synchronizes the schema on startup, and
// hands out the coordinator and mappers.
type EntityManager struct {
	cfg config.Config
	reg *registry.Registry
	log *slog.Logger

	mu    sync.Mutex
	db    *sql.DB
	coord *Coordinator
}

// Option configures an EntityManager.
type Option func(*EntityManager)

// WithLogger replaces the default slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *EntityManager) {
		m.log = log
	}
}

// New creates an EntityManager over the given registry. Nothing is opened
// until Initialize.
func New(cfg config.Config, reg *registry.Registry, opts ...Option) *EntityManager {
	m := &EntityManager{
		cfg: cfg,
		reg: reg,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize opens the storage connection. It is idempotent: a second call
// is a no-op returning the same state. When AutoCreateSchema is set, the
// create statement runs for every registered entity; per-entity failures are
// logged and skipped without aborting the remaining entities.
func (m *EntityManager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return nil
	}
	if err := m.cfg.Validate(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", m.cfg.StoragePath)
	if err != nil {
		return errors.NewStorageError("open", err)
	}
	// One logical connection: operations execute sequentially against it,
	// and a transaction can never race a pool sibling for the file lock.
	db.SetMaxOpenConns(1)
	for _, pragma := range connectionPragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return errors.NewStorageError("configure connection", err)
		}
	}

	if m.cfg.AutoCreateSchema {
		m.synchronizeSchema(ctx, db)
	}

	m.db = db
	m.coord = newCoordinator(db, m.reg, m.log)
	if m.cfg.VerboseLogging {
		m.log.Debug("entity manager initialized",
			"storagePath", m.cfg.StoragePath,
			"entities", m.reg.Len())
	}
	return nil
}

// synchronizeSchema runs create-table-if-absent for every registered entity.
// A failing entity is logged and skipped; the remaining entities still get
// their tables.
func (m *EntityManager) synchronizeSchema(ctx context.Context, db *sql.DB) {
	for _, schema := range m.reg.Schemas() {
		stmt := sqlgen.CreateTable(schema)
		if m.cfg.VerboseLogging {
			m.log.Debug("schema sync", "table", schema.Table, "statement", stmt)
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			m.log.Warn("schema sync failed, skipping entity",
				"table", schema.Table, "error", err)
		}
	}
}

// Coordinator returns the unit-of-work coordinator. It fails with
// ErrNotInitialized before Initialize completes or after Shutdown.
func (m *EntityManager) Coordinator() (*Coordinator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil, fmt.Errorf("coordinator: %w", errors.ErrNotInitialized)
	}
	return m.coord, nil
}

// Mapper returns the manager's mapper for type T, backed by the shared
// coordinator so instances are reused across calls and transactions.
func Mapper[T any](m *EntityManager) (*sqlite.Mapper[T], error) {
	coord, err := m.Coordinator()
	if err != nil {
		return nil, err
	}
	return MapperFor[T](coord)
}

// Shutdown closes the connection. Subsequent operations fail with
// ErrNotInitialized until Initialize is called again.
func (m *EntityManager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	m.coord = nil
	if err != nil {
		return errors.NewStorageError("close", err)
	}
	return nil
}
