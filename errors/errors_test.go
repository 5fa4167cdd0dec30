/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestSentinelMatching(t *testing.T) {
	t.Run("InvalidIdentifier", func(t *testing.T) {
		err := NewInvalidIdentifierError("table", "bad;name")
		if !stderrors.Is(err, ErrInvalidIdentifier) {
			t.Error("expected error to match ErrInvalidIdentifier")
		}
		if !IsInvalidIdentifier(err) {
			t.Error("IsInvalidIdentifier should return true")
		}
		if IsNotRegistered(err) {
			t.Error("IsNotRegistered should return false")
		}
	})

	t.Run("NotRegistered", func(t *testing.T) {
		err := NewNotRegisteredError("User")
		if !IsNotRegistered(err) {
			t.Error("IsNotRegistered should return true")
		}
	})

	t.Run("MalformedRow", func(t *testing.T) {
		err := NewMalformedRowError("users", "created_at", "not a timestamp")
		if !IsMalformedRow(err) {
			t.Error("IsMalformedRow should return true")
		}
	})

	t.Run("UnknownCriteriaField", func(t *testing.T) {
		err := NewUnknownCriteriaFieldError("users", "nickname")
		if !IsUnknownCriteriaField(err) {
			t.Error("IsUnknownCriteriaField should return true")
		}
	})
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewStorageError("save", cause)

	if !IsStorageFailure(err) {
		t.Error("IsStorageFailure should return true")
	}
	if !stderrors.Is(err, cause) {
		t.Error("StorageError should unwrap to its cause")
	}
}

func TestWrappedErrorsKeepIdentity(t *testing.T) {
	err := fmt.Errorf("find user: %w", NewMalformedRowError("users", "id", "missing column"))
	if !IsMalformedRow(err) {
		t.Error("wrapped MalformedRowError should still match ErrMalformedRow")
	}

	var mre *MalformedRowError
	if !stderrors.As(err, &mre) {
		t.Fatal("errors.As should locate MalformedRowError")
	}
	if mre.Table != "users" || mre.Column != "id" {
		t.Errorf("unexpected fields: %+v", mre)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"identifier", NewInvalidIdentifierError("table", "a;b"), `invalid table identifier "a;b"`},
		{"notRegistered", NewNotRegisteredError("Order"), "entity type Order not registered"},
		{"criteria", NewUnknownCriteriaFieldError("orders", "total"), `unknown criteria field "total" for table orders`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
