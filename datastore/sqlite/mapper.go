/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlite

import (
	"context"
	"fmt"

	"github.com/suparena/entitysql/codec"
	"github.com/suparena/entitysql/datastore"
	"github.com/suparena/entitysql/errors"
	"github.com/suparena/entitysql/registry"
	"github.com/suparena/entitysql/sqlgen"
	"github.com/suparena/entitysql/storagemodels"
)

// Mapper implements datastore.DataStore[T] against an embedded SQLite
// database. It binds one entity descriptor to one executor source and owns
// no other state, so a single instance is safe to reuse indefinitely.
type Mapper[T any] struct {
	desc *registry.EntityDescriptor[T]
	src  datastore.ExecutorSource
}

// NewMapper constructs a Mapper for type T from registered metadata.
// It fails with ErrNotRegistered when T has no descriptor.
func NewMapper[T any](reg *registry.Registry, src datastore.ExecutorSource) (*Mapper[T], error) {
	desc, err := registry.DescriptorFor[T](reg)
	if err != nil {
		return nil, err
	}
	return &Mapper[T]{desc: desc, src: src}, nil
}

// Descriptor returns the entity metadata the mapper is bound to.
func (m *Mapper[T]) Descriptor() *registry.EntityDescriptor[T] {
	return m.desc
}

// FindAll returns every row of the entity's table.
func (m *Mapper[T]) FindAll(ctx context.Context) ([]T, error) {
	return m.FindWhere(ctx, nil)
}

// FindWhere returns the rows matching the criteria. Nil or empty criteria
// compile to a full scan, so FindWhere(ctx, nil) equals FindAll(ctx).
func (m *Mapper[T]) FindWhere(ctx context.Context, criteria *storagemodels.Criteria) ([]T, error) {
	cols, args, err := m.resolveCriteria(criteria)
	if err != nil {
		return nil, err
	}
	return m.findMany(ctx, sqlgen.Select(m.desc.TableName(), cols), args)
}

// FindOne returns the first row matching the criteria, or nil when no row
// matches. Absence is not an error.
func (m *Mapper[T]) FindOne(ctx context.Context, criteria *storagemodels.Criteria) (*T, error) {
	matches, err := m.FindWhere(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

// FindByKey returns the row whose primary key equals key, or nil. It fails
// with ErrNoPrimaryKey when the descriptor declares none.
func (m *Mapper[T]) FindByKey(ctx context.Context, key any) (*T, error) {
	pk, ok := m.desc.PrimaryKey()
	if !ok {
		return nil, fmt.Errorf("find %s by key: %w", m.desc.TableName(), errors.ErrNoPrimaryKey)
	}
	return m.FindOne(ctx, storagemodels.NewCriteria().Eq(pk.Property, key))
}

// Save upserts the entity: the parameter list is built by reading every
// column's bound property in descriptor order, converting each value, and
// executing the compiled insert. A repeated save with the same primary key
// value overwrites the existing row.
func (m *Mapper[T]) Save(ctx context.Context, entity *T) error {
	if entity == nil {
		return fmt.Errorf("save %s: nil entity", m.desc.TableName())
	}

	columns := m.desc.Columns()
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		v, err := codec.ToStorage(col.Kind, col.Get(entity))
		if err != nil {
			return fmt.Errorf("save %s, column %q: %w", m.desc.TableName(), col.Column, err)
		}
		args = append(args, v)
	}

	stmt := sqlgen.Insert(m.desc.Schema())
	if _, err := m.src.Executor().ExecContext(ctx, stmt, args...); err != nil {
		return errors.NewStorageError("save", err)
	}
	return nil
}

// UpdateWhere applies the field set to every row matching the criteria and
// returns the affected row count. An empty field set fails with
// ErrNoUpdateFields before the storage engine is touched; matching zero rows
// is not an error.
func (m *Mapper[T]) UpdateWhere(ctx context.Context, criteria *storagemodels.Criteria, updates *storagemodels.Updates) (int64, error) {
	if updates.Len() == 0 {
		return 0, fmt.Errorf("update %s: %w", m.desc.TableName(), errors.ErrNoUpdateFields)
	}

	setCols := make([]string, 0, updates.Len())
	args := make([]any, 0, updates.Len())
	for _, pair := range updates.Pairs() {
		col, arg, err := m.resolvePair(pair)
		if err != nil {
			return 0, err
		}
		setCols = append(setCols, col)
		args = append(args, arg)
	}

	whereCols, whereArgs, err := m.resolveCriteria(criteria)
	if err != nil {
		return 0, err
	}
	args = append(args, whereArgs...)

	stmt := sqlgen.Update(m.desc.TableName(), setCols, whereCols)
	res, err := m.src.Executor().ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, errors.NewStorageError("update", err)
	}
	return res.RowsAffected()
}

// DeleteWhere removes every row matching the criteria and returns the
// affected row count.
func (m *Mapper[T]) DeleteWhere(ctx context.Context, criteria *storagemodels.Criteria) (int64, error) {
	cols, args, err := m.resolveCriteria(criteria)
	if err != nil {
		return 0, err
	}

	res, err := m.src.Executor().ExecContext(ctx, sqlgen.Delete(m.desc.TableName(), cols), args...)
	if err != nil {
		return 0, errors.NewStorageError("delete", err)
	}
	return res.RowsAffected()
}

// DeleteByKey removes the row whose primary key equals key. It fails with
// ErrNoPrimaryKey when the descriptor declares none.
func (m *Mapper[T]) DeleteByKey(ctx context.Context, key any) error {
	pk, ok := m.desc.PrimaryKey()
	if !ok {
		return fmt.Errorf("delete %s by key: %w", m.desc.TableName(), errors.ErrNoPrimaryKey)
	}
	_, err := m.DeleteWhere(ctx, storagemodels.NewCriteria().Eq(pk.Property, key))
	return err
}

// Count returns the table's row count.
func (m *Mapper[T]) Count(ctx context.Context) (int64, error) {
	rows, err := m.src.Executor().QueryContext(ctx, sqlgen.Count(m.desc.TableName()))
	if err != nil {
		return 0, errors.NewStorageError("count", err)
	}
	defer rows.Close()

	var n int64
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, errors.NewStorageError("count", err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, errors.NewStorageError("count", err)
	}
	return n, nil
}

// resolveCriteria translates property names into column names and converts
// the candidate values. Unknown property names fail fast with
// ErrUnknownCriteriaField; the raw name never reaches statement text.
func (m *Mapper[T]) resolveCriteria(criteria *storagemodels.Criteria) ([]string, []any, error) {
	if criteria.Len() == 0 {
		return nil, nil, nil
	}

	cols := make([]string, 0, criteria.Len())
	args := make([]any, 0, criteria.Len())
	for _, pair := range criteria.Pairs() {
		col, arg, err := m.resolvePair(pair)
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, col)
		args = append(args, arg)
	}
	return cols, args, nil
}

func (m *Mapper[T]) resolvePair(pair storagemodels.Pair) (string, any, error) {
	col, ok := m.desc.ColumnFor(pair.Property)
	if !ok {
		return "", nil, errors.NewUnknownCriteriaFieldError(m.desc.TableName(), pair.Property)
	}
	arg, err := codec.ToStorage(col.Kind, pair.Value)
	if err != nil {
		return "", nil, fmt.Errorf("criteria %s.%s: %w", m.desc.TableName(), pair.Property, err)
	}
	return col.Column, arg, nil
}

func (m *Mapper[T]) findMany(ctx context.Context, query string, args []any) ([]T, error) {
	rows, err := m.src.Executor().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStorageError("select", err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		raw, err := scanRow(rows)
		if err != nil {
			return nil, errors.NewStorageError("select", err)
		}
		entity, err := m.hydrate(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageError("select", err)
	}
	return out, nil
}
