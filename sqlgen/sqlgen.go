/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlgen

import (
	"strings"

	"github.com/suparena/entitysql/registry"
)

// CreateTable compiles the idempotent create statement for a schema. Safe to
// execute on every startup.
func CreateTable(s registry.TableSchema) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(s.Table)
	b.WriteString(" (")
	for i, col := range s.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col.Name)
		b.WriteByte(' ')
		b.WriteString(col.Kind.SQLType())
		if col.Primary {
			b.WriteString(" PRIMARY KEY")
		}
	}
	b.WriteString(")")
	return b.String()
}

// Insert compiles one parameterized upsert covering every declared column in
// descriptor order. OR REPLACE makes a repeated save with the same primary
// key overwrite the existing row instead of failing the uniqueness
// constraint; without a primary key it degrades to a plain insert.
func Insert(s registry.TableSchema) string {
	var b strings.Builder
	b.WriteString("INSERT OR REPLACE INTO ")
	b.WriteString(s.Table)
	b.WriteString(" (")
	for i, col := range s.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col.Name)
	}
	b.WriteString(") VALUES (")
	for i := range s.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('?')
	}
	b.WriteString(")")
	return b.String()
}

// Select compiles a scan over the table restricted to an equality conjunction
// on criteriaCols. Zero criteria means no WHERE clause, a full scan.
func Select(table string, criteriaCols []string) string {
	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	b.WriteString(table)
	writeWhere(&b, criteriaCols)
	return b.String()
}

// Update compiles a SET list plus an equality-conjunction WHERE clause.
// The caller guarantees setCols is non-empty; an empty update-field set is
// rejected upstream before any statement is compiled.
func Update(table string, setCols, whereCols []string) string {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")
	for i, col := range setCols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col)
		b.WriteString(" = ?")
	}
	writeWhere(&b, whereCols)
	return b.String()
}

// Delete compiles a delete restricted to an equality conjunction.
func Delete(table string, whereCols []string) string {
	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(table)
	writeWhere(&b, whereCols)
	return b.String()
}

// Count compiles the row count statement for a table.
func Count(table string) string {
	return "SELECT COUNT(*) FROM " + table
}

func writeWhere(b *strings.Builder, cols []string) {
	for i, col := range cols {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(col)
		b.WriteString(" = ?")
	}
}
