/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"regexp"

	"github.com/suparena/entitysql/codec"
	"github.com/suparena/entitysql/errors"
)

// identPattern is the single choke point for identifier validation. Every
// table and column name embedded in statement text must have passed it at
// registration time.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ColumnDescriptor binds one entity property to one storage column.
// Get and Set move the value between an instance and a row without any
// reflection; both are required.
type ColumnDescriptor[T any] struct {
	// Property is the source-level field identifier used in criteria maps.
	Property string
	// Column is the storage-level identifier. Defaults to Property.
	Column string
	// Kind selects the codec conversion for this column.
	Kind codec.ScalarKind
	// Primary marks the column as the table's primary key. At most one
	// column per descriptor may set it.
	Primary bool
	// Get reads the property off an instance.
	Get func(*T) any
	// Set assigns a converted storage value to the property.
	Set func(*T, any) error
}

// ColumnSchema is the non-generic view of a column used by the SQL compiler.
type ColumnSchema struct {
	Name    string
	Kind    codec.ScalarKind
	Primary bool
}

// TableSchema is the non-generic view of a registered entity's table shape.
type TableSchema struct {
	Table   string
	Columns []ColumnSchema
}

// PrimaryColumn returns the name of the primary key column, if any.
func (s TableSchema) PrimaryColumn() (string, bool) {
	for _, c := range s.Columns {
		if c.Primary {
			return c.Name, true
		}
	}
	return "", false
}

// EntityDescriptor holds the registered schema metadata for one entity type.
// It is created once by NewDescriptor and immutable thereafter.
type EntityDescriptor[T any] struct {
	table      string
	columns    []ColumnDescriptor[T]
	primary    int
	byProperty map[string]int
}

// NewDescriptor validates and builds an EntityDescriptor. Validation happens
// here, never at query time: the table name and every column name must match
// ^[A-Za-z_][A-Za-z0-9_]*$, column names must be unique, and at most one
// column may be marked primary. A second primary marking fails immediately
// rather than silently overriding the first.
func NewDescriptor[T any](table string, columns ...ColumnDescriptor[T]) (*EntityDescriptor[T], error) {
	if !identPattern.MatchString(table) {
		return nil, errors.NewInvalidIdentifierError("table", table)
	}

	d := &EntityDescriptor[T]{
		table:      table,
		columns:    make([]ColumnDescriptor[T], 0, len(columns)),
		primary:    -1,
		byProperty: make(map[string]int, len(columns)),
	}

	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if col.Column == "" {
			col.Column = col.Property
		}
		if !identPattern.MatchString(col.Column) {
			return nil, errors.NewInvalidIdentifierError("column", col.Column)
		}
		if col.Property == "" {
			return nil, fmt.Errorf("descriptor for table %q: column %q has no property name", table, col.Column)
		}
		if _, dup := seen[col.Column]; dup {
			return nil, fmt.Errorf("descriptor for table %q: duplicate column %q: %w", table, col.Column, errors.ErrInvalidIdentifier)
		}
		seen[col.Column] = struct{}{}
		if _, dup := d.byProperty[col.Property]; dup {
			return nil, fmt.Errorf("descriptor for table %q: duplicate property %q", table, col.Property)
		}
		if col.Get == nil || col.Set == nil {
			return nil, fmt.Errorf("descriptor for table %q: column %q needs both Get and Set accessors", table, col.Column)
		}
		if col.Primary {
			if d.primary >= 0 {
				return nil, fmt.Errorf("descriptor for table %q: second primary column %q (primary is already %q)",
					table, col.Column, d.columns[d.primary].Column)
			}
			d.primary = len(d.columns)
		}
		d.byProperty[col.Property] = len(d.columns)
		d.columns = append(d.columns, col)
	}

	return d, nil
}

// TableName returns the validated table identifier.
func (d *EntityDescriptor[T]) TableName() string {
	return d.table
}

// Columns returns the ordered column descriptors.
func (d *EntityDescriptor[T]) Columns() []ColumnDescriptor[T] {
	return d.columns
}

// PrimaryKey returns the primary column descriptor, if one was declared.
func (d *EntityDescriptor[T]) PrimaryKey() (ColumnDescriptor[T], bool) {
	if d.primary < 0 {
		return ColumnDescriptor[T]{}, false
	}
	return d.columns[d.primary], true
}

// ColumnFor resolves a property name to its column descriptor.
func (d *EntityDescriptor[T]) ColumnFor(property string) (ColumnDescriptor[T], bool) {
	i, ok := d.byProperty[property]
	if !ok {
		return ColumnDescriptor[T]{}, false
	}
	return d.columns[i], true
}

// Schema returns the non-generic view consumed by the SQL compiler.
func (d *EntityDescriptor[T]) Schema() TableSchema {
	cols := make([]ColumnSchema, len(d.columns))
	for i, c := range d.columns {
		cols[i] = ColumnSchema{Name: c.Column, Kind: c.Kind, Primary: c.Primary}
	}
	return TableSchema{Table: d.table, Columns: cols}
}
