/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels provides sample entities and descriptors shared by the
// library's own tests.
package testmodels

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/suparena/entitysql/codec"
	"github.com/suparena/entitysql/registry"
)

// User is the canonical test entity: one column of every scalar kind.
type User struct {
	ID        int64
	Name      string
	Active    bool
	CreatedAt time.Time
}

// NewUserDescriptor builds the descriptor for User against table "users".
func NewUserDescriptor() (*registry.EntityDescriptor[User], error) {
	return registry.NewDescriptor[User]("users",
		registry.ColumnDescriptor[User]{
			Property: "ID", Column: "id", Kind: codec.KindInteger, Primary: true,
			Get: func(u *User) any { return u.ID },
			Set: func(u *User, v any) error { return setInt64(&u.ID, v) },
		},
		registry.ColumnDescriptor[User]{
			Property: "Name", Column: "name", Kind: codec.KindText,
			Get: func(u *User) any { return u.Name },
			Set: func(u *User, v any) error { return setString(&u.Name, v) },
		},
		registry.ColumnDescriptor[User]{
			Property: "Active", Column: "active", Kind: codec.KindBoolean,
			Get: func(u *User) any { return u.Active },
			Set: func(u *User, v any) error { return setBool(&u.Active, v) },
		},
		registry.ColumnDescriptor[User]{
			Property: "CreatedAt", Column: "created_at", Kind: codec.KindTimestamp,
			Get: func(u *User) any { return u.CreatedAt },
			Set: func(u *User, v any) error { return setTime(&u.CreatedAt, v) },
		},
	)
}

// Order is a second entity type for multi-entity and transaction tests.
type Order struct {
	ID     string
	UserID int64
	Status string
}

// NewOrderID returns a fresh random order identifier.
func NewOrderID() string {
	return uuid.NewString()
}

// NewOrderDescriptor builds the descriptor for Order against table "orders".
func NewOrderDescriptor() (*registry.EntityDescriptor[Order], error) {
	return registry.NewDescriptor[Order]("orders",
		registry.ColumnDescriptor[Order]{
			Property: "ID", Column: "id", Kind: codec.KindText, Primary: true,
			Get: func(o *Order) any { return o.ID },
			Set: func(o *Order, v any) error { return setString(&o.ID, v) },
		},
		registry.ColumnDescriptor[Order]{
			Property: "UserID", Column: "user_id", Kind: codec.KindInteger,
			Get: func(o *Order) any { return o.UserID },
			Set: func(o *Order, v any) error { return setInt64(&o.UserID, v) },
		},
		registry.ColumnDescriptor[Order]{
			Property: "Status", Column: "status", Kind: codec.KindText,
			Get: func(o *Order) any { return o.Status },
			Set: func(o *Order, v any) error { return setString(&o.Status, v) },
		},
	)
}

// Note is an entity without a primary key, for ErrNoPrimaryKey paths.
type Note struct {
	Body string
}

// NewNoteDescriptor builds the descriptor for Note against table "notes".
func NewNoteDescriptor() (*registry.EntityDescriptor[Note], error) {
	return registry.NewDescriptor[Note]("notes",
		registry.ColumnDescriptor[Note]{
			Property: "Body", Column: "body", Kind: codec.KindText,
			Get: func(n *Note) any { return n.Body },
			Set: func(n *Note, v any) error { return setString(&n.Body, v) },
		},
	)
}

func setInt64(dst *int64, v any) error {
	if v == nil {
		*dst = 0
		return nil
	}
	n, ok := v.(int64)
	if !ok {
		return fmt.Errorf("expected int64, got %T", v)
	}
	*dst = n
	return nil
}

func setString(dst *string, v any) error {
	if v == nil {
		*dst = ""
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", v)
	}
	*dst = s
	return nil
}

func setBool(dst *bool, v any) error {
	if v == nil {
		*dst = false
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T", v)
	}
	*dst = b
	return nil
}

func setTime(dst *time.Time, v any) error {
	if v == nil {
		*dst = time.Time{}
		return nil
	}
	t, ok := v.(time.Time)
	if !ok {
		return fmt.Errorf("expected time.Time, got %T", v)
	}
	*dst = t
	return nil
}
