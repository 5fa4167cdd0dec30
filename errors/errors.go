/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidIdentifier is returned when a table or column name fails validation
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrNotRegistered is returned when an entity type was never registered
	ErrNotRegistered = errors.New("entity type not registered")

	// ErrAlreadyRegistered is returned when an entity type is registered twice
	ErrAlreadyRegistered = errors.New("entity type already registered")

	// ErrNotInitialized is returned when an operation runs before the connection is open
	ErrNotInitialized = errors.New("entity manager not initialized")

	// ErrNoPrimaryKey is returned when a key-based operation targets a descriptor without a primary key
	ErrNoPrimaryKey = errors.New("no primary key declared")

	// ErrNoUpdateFields is returned when an update carries an empty field set
	ErrNoUpdateFields = errors.New("no update fields provided")

	// ErrMalformedRow is returned when a row cannot be mapped onto an entity instance
	ErrMalformedRow = errors.New("malformed row")

	// ErrStorageFailure is returned when the storage engine rejects a statement
	ErrStorageFailure = errors.New("storage failure")

	// ErrUnknownCriteriaField is returned when a criteria key names no registered property
	ErrUnknownCriteriaField = errors.New("unknown criteria field")

	// ErrNestedTransaction is returned when RunAtomic is invoked inside RunAtomic
	ErrNestedTransaction = errors.New("nested transaction not supported")
)

// InvalidIdentifierError reports a table or column name rejected at registration time.
type InvalidIdentifierError struct {
	Kind string // "table" or "column"
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s identifier %q", e.Kind, e.Name)
}

func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// NotRegisteredError reports a lookup for an entity type the registry has never seen.
type NotRegisteredError struct {
	Type string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("entity type %s not registered", e.Type)
}

func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}

// MalformedRowError reports a row/entity shape mismatch during hydration.
type MalformedRowError struct {
	Table  string
	Column string
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row in %s, column %q: %s", e.Table, e.Column, e.Reason)
}

func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}

// StorageError wraps a rejection from the underlying storage engine.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFailure
}

// UnknownCriteriaFieldError reports a criteria key that resolves to no registered property.
type UnknownCriteriaFieldError struct {
	Table    string
	Property string
}

func (e *UnknownCriteriaFieldError) Error() string {
	return fmt.Sprintf("unknown criteria field %q for table %s", e.Property, e.Table)
}

func (e *UnknownCriteriaFieldError) Is(target error) bool {
	return target == ErrUnknownCriteriaField
}

// Helper functions for creating errors

// NewInvalidIdentifierError creates a new InvalidIdentifierError
func NewInvalidIdentifierError(kind, name string) error {
	return &InvalidIdentifierError{Kind: kind, Name: name}
}

// NewNotRegisteredError creates a new NotRegisteredError
func NewNotRegisteredError(typeName string) error {
	return &NotRegisteredError{Type: typeName}
}

// NewMalformedRowError creates a new MalformedRowError
func NewMalformedRowError(table, column, reason string) error {
	return &MalformedRowError{Table: table, Column: column, Reason: reason}
}

// NewStorageError wraps an engine error with the failing operation name
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// NewUnknownCriteriaFieldError creates a new UnknownCriteriaFieldError
func NewUnknownCriteriaFieldError(table, property string) error {
	return &UnknownCriteriaFieldError{Table: table, Property: property}
}

// IsInvalidIdentifier checks if an error is an identifier validation error
func IsInvalidIdentifier(err error) bool {
	return errors.Is(err, ErrInvalidIdentifier)
}

// IsNotRegistered checks if an error is a missing-registration error
func IsNotRegistered(err error) bool {
	return errors.Is(err, ErrNotRegistered)
}

// IsMalformedRow checks if an error is a row hydration error
func IsMalformedRow(err error) bool {
	return errors.Is(err, ErrMalformedRow)
}

// IsStorageFailure checks if an error originated in the storage engine
func IsStorageFailure(err error) bool {
	return errors.Is(err, ErrStorageFailure)
}

// IsUnknownCriteriaField checks if an error is an unknown-criteria error
func IsUnknownCriteriaField(err error) bool {
	return errors.Is(err, ErrUnknownCriteriaField)
}
