/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/suparena/entitysql/codec"
	"github.com/suparena/entitysql/errors"
)

type testUser struct {
	ID   int64
	Name string
}

type testOrder struct {
	ID int64
}

func userColumns() []ColumnDescriptor[testUser] {
	return []ColumnDescriptor[testUser]{
		{
			Property: "ID", Column: "id", Kind: codec.KindInteger, Primary: true,
			Get: func(u *testUser) any { return u.ID },
			Set: func(u *testUser, v any) error { u.ID = v.(int64); return nil },
		},
		{
			Property: "Name", Column: "name", Kind: codec.KindText,
			Get: func(u *testUser) any { return u.Name },
			Set: func(u *testUser, v any) error { u.Name = v.(string); return nil },
		},
	}
}

func mustUserDescriptor(t *testing.T) *EntityDescriptor[testUser] {
	t.Helper()
	d, err := NewDescriptor[testUser]("users", userColumns()...)
	if err != nil {
		t.Fatalf("NewDescriptor: %v", err)
	}
	return d
}

func TestNewDescriptorValidation(t *testing.T) {
	t.Run("RejectsBadTableNames", func(t *testing.T) {
		for _, name := range []string{"users; DROP TABLE users", `users"`, "1users", "us ers", "", "users-2"} {
			_, err := NewDescriptor[testUser](name, userColumns()...)
			if !errors.IsInvalidIdentifier(err) {
				t.Errorf("table %q: expected ErrInvalidIdentifier, got %v", name, err)
			}
		}
	})

	t.Run("RejectsBadColumnNames", func(t *testing.T) {
		cols := userColumns()
		cols[1].Column = "name; --"
		_, err := NewDescriptor[testUser]("users", cols...)
		if !errors.IsInvalidIdentifier(err) {
			t.Errorf("expected ErrInvalidIdentifier, got %v", err)
		}
	})

	t.Run("RejectsDuplicateColumns", func(t *testing.T) {
		cols := userColumns()
		cols[1].Column = "id"
		_, err := NewDescriptor[testUser]("users", cols...)
		if err == nil {
			t.Fatal("expected error for duplicate column names")
		}
	})

	t.Run("RejectsSecondPrimary", func(t *testing.T) {
		cols := userColumns()
		cols[1].Primary = true
		_, err := NewDescriptor[testUser]("users", cols...)
		if err == nil {
			t.Fatal("expected error for second primary column")
		}
	})

	t.Run("RequiresAccessors", func(t *testing.T) {
		cols := userColumns()
		cols[0].Set = nil
		_, err := NewDescriptor[testUser]("users", cols...)
		if err == nil {
			t.Fatal("expected error for missing Set accessor")
		}
	})

	t.Run("ColumnDefaultsToProperty", func(t *testing.T) {
		d, err := NewDescriptor[testUser]("users", ColumnDescriptor[testUser]{
			Property: "Name", Kind: codec.KindText,
			Get: func(u *testUser) any { return u.Name },
			Set: func(u *testUser, v any) error { u.Name = v.(string); return nil },
		})
		if err != nil {
			t.Fatalf("NewDescriptor: %v", err)
		}
		if d.Columns()[0].Column != "Name" {
			t.Errorf("expected column name to default to property, got %q", d.Columns()[0].Column)
		}
	})
}

func TestDescriptorAccessors(t *testing.T) {
	d := mustUserDescriptor(t)

	if d.TableName() != "users" {
		t.Errorf("TableName() = %q", d.TableName())
	}

	pk, ok := d.PrimaryKey()
	if !ok || pk.Column != "id" {
		t.Errorf("PrimaryKey() = %+v, %v", pk, ok)
	}

	col, ok := d.ColumnFor("Name")
	if !ok || col.Column != "name" {
		t.Errorf(`ColumnFor("Name") = %+v, %v`, col, ok)
	}
	if _, ok := d.ColumnFor("Nickname"); ok {
		t.Error("ColumnFor should miss on unregistered properties")
	}

	schema := d.Schema()
	if schema.Table != "users" || len(schema.Columns) != 2 {
		t.Errorf("Schema() = %+v", schema)
	}
	if pkCol, ok := schema.PrimaryColumn(); !ok || pkCol != "id" {
		t.Errorf("PrimaryColumn() = %q, %v", pkCol, ok)
	}
}

func TestRegistry(t *testing.T) {
	t.Run("RegisterAndDescribe", func(t *testing.T) {
		reg := New()
		if err := Register(reg, mustUserDescriptor(t)); err != nil {
			t.Fatalf("Register: %v", err)
		}

		d, err := DescriptorFor[testUser](reg)
		if err != nil {
			t.Fatalf("DescriptorFor: %v", err)
		}
		if d.TableName() != "users" {
			t.Errorf("unexpected descriptor: %q", d.TableName())
		}
	})

	t.Run("DescribeUnregisteredFails", func(t *testing.T) {
		reg := New()
		_, err := DescriptorFor[testOrder](reg)
		if !errors.IsNotRegistered(err) {
			t.Errorf("expected ErrNotRegistered, got %v", err)
		}
	})

	t.Run("DescribeZeroColumnsFails", func(t *testing.T) {
		reg := New()
		d, err := NewDescriptor[testOrder]("orders")
		if err != nil {
			t.Fatalf("NewDescriptor: %v", err)
		}
		if err := Register(reg, d); err != nil {
			t.Fatalf("Register: %v", err)
		}
		if _, err := DescriptorFor[testOrder](reg); !errors.IsNotRegistered(err) {
			t.Errorf("expected ErrNotRegistered for zero-column descriptor, got %v", err)
		}
	})

	t.Run("DuplicateRegistrationFails", func(t *testing.T) {
		reg := New()
		if err := Register(reg, mustUserDescriptor(t)); err != nil {
			t.Fatalf("Register: %v", err)
		}
		err := Register(reg, mustUserDescriptor(t))
		if err == nil {
			t.Fatal("expected duplicate registration to fail")
		}
	})

	t.Run("SchemasKeepRegistrationOrder", func(t *testing.T) {
		reg := New()
		if err := Register(reg, mustUserDescriptor(t)); err != nil {
			t.Fatal(err)
		}
		orderDesc, err := NewDescriptor[testOrder]("orders", ColumnDescriptor[testOrder]{
			Property: "ID", Column: "id", Kind: codec.KindInteger, Primary: true,
			Get: func(o *testOrder) any { return o.ID },
			Set: func(o *testOrder, v any) error { o.ID = v.(int64); return nil },
		})
		if err != nil {
			t.Fatal(err)
		}
		if err := Register(reg, orderDesc); err != nil {
			t.Fatal(err)
		}

		schemas := reg.Schemas()
		if len(schemas) != 2 || schemas[0].Table != "users" || schemas[1].Table != "orders" {
			t.Errorf("unexpected schema order: %+v", schemas)
		}
		if reg.Len() != 2 {
			t.Errorf("Len() = %d", reg.Len())
		}
	})
}
