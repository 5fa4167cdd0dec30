/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlite

import (
	"database/sql"

	"github.com/suparena/entitysql/codec"
	"github.com/suparena/entitysql/errors"
)

// scanRow reads the current row into a column-name→value map. The driver
// decides the dynamic types; the codec sorts them out per declared kind.
func scanRow(rows *sql.Rows) (map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	raw := make(map[string]any, len(cols))
	for i, name := range cols {
		raw[name] = vals[i]
	}
	return raw, nil
}

// hydrate builds a fresh entity instance from a raw row. The correspondence
// is total: every declared column must be present and coercible to its
// declared kind, or hydration fails with ErrMalformedRow.
func (m *Mapper[T]) hydrate(raw map[string]any) (*T, error) {
	entity := new(T)
	for _, col := range m.desc.Columns() {
		v, ok := raw[col.Column]
		if !ok {
			return nil, errors.NewMalformedRowError(m.desc.TableName(), col.Column, "column missing from row")
		}
		converted, err := codec.FromStorage(col.Kind, v)
		if err != nil {
			return nil, errors.NewMalformedRowError(m.desc.TableName(), col.Column, err.Error())
		}
		if err := col.Set(entity, converted); err != nil {
			return nil, errors.NewMalformedRowError(m.desc.TableName(), col.Column, err.Error())
		}
	}
	return entity, nil
}
