/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
	"database/sql"

	"github.com/suparena/entitysql/storagemodels"
)

// Executor is the slice of the storage engine the mappers need: prepare-and-
// execute primitives satisfied by both *sql.DB and *sql.Tx, so the same
// mapper works inside and outside a transaction.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// ExecutorSource yields the executor an operation should run against. A unit
// of work implements it to route statements through its open transaction;
// outside transactions the executor is the connection itself.
type ExecutorSource interface {
	Executor() Executor
}

type dbSource struct {
	db *sql.DB
}

func (s dbSource) Executor() Executor {
	return s.db
}

// FromDB adapts a raw connection into an ExecutorSource for standalone
// mapper use.
func FromDB(db *sql.DB) ExecutorSource {
	return dbSource{db: db}
}

// DataStore is the per-entity-type façade for CRUD against the storage
// engine. FindOne and FindByKey return (nil, nil) when no row matches;
// absence is not an error.
type DataStore[T any] interface {
	// FindAll returns every row of the entity's table.
	FindAll(ctx context.Context) ([]T, error)

	// FindWhere returns the rows matching an equality conjunction. A nil or
	// empty criteria is a full scan.
	FindWhere(ctx context.Context, criteria *storagemodels.Criteria) ([]T, error)

	// FindOne returns the first row matching the criteria, or nil.
	FindOne(ctx context.Context, criteria *storagemodels.Criteria) (*T, error)

	// FindByKey returns the row with the given primary key value, or nil.
	FindByKey(ctx context.Context, key any) (*T, error)

	// Save upserts the entity: a repeated save with the same primary key
	// value overwrites the existing row.
	Save(ctx context.Context, entity *T) error

	// UpdateWhere applies the field set to every matching row and returns
	// the affected row count. An empty field set is an error; matching zero
	// rows is not.
	UpdateWhere(ctx context.Context, criteria *storagemodels.Criteria, updates *storagemodels.Updates) (int64, error)

	// DeleteWhere removes every matching row and returns the affected count.
	DeleteWhere(ctx context.Context, criteria *storagemodels.Criteria) (int64, error)

	// DeleteByKey removes the row with the given primary key value.
	DeleteByKey(ctx context.Context, key any) error

	// Count returns the table's row count.
	Count(ctx context.Context) (int64, error)
}
