/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
)

// ScalarKind identifies the abstract storage type of a column.
type ScalarKind string

const (
	KindText      ScalarKind = "text"
	KindInteger   ScalarKind = "integer"
	KindBoolean   ScalarKind = "boolean"
	KindTimestamp ScalarKind = "timestamp"
)

// SQLType returns the SQLite column type for the kind.
// Booleans are stored as INTEGER 0/1 and timestamps as ISO-8601 TEXT.
func (k ScalarKind) SQLType() string {
	switch k {
	case KindInteger, KindBoolean:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

// ToStorage converts a domain value into the engine's native representation.
// Nil passes through untouched, as do values of unknown kinds; the unknown-kind
// passthrough is a deliberate escape hatch for columns the codec does not manage.
func ToStorage(kind ScalarKind, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch kind {
	case KindBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("codec: boolean column got %T", value)
		}
		if b {
			return int64(1), nil
		}
		return int64(0), nil

	case KindTimestamp:
		switch t := value.(type) {
		case time.Time:
			return strfmt.DateTime(t).String(), nil
		case *time.Time:
			if t == nil {
				return nil, nil
			}
			return strfmt.DateTime(*t).String(), nil
		case strfmt.DateTime:
			return t.String(), nil
		case *strfmt.DateTime:
			if t == nil {
				return nil, nil
			}
			return t.String(), nil
		default:
			return nil, fmt.Errorf("codec: timestamp column got %T", value)
		}

	case KindText, KindInteger:
		return value, nil

	default:
		return value, nil
	}
}

// FromStorage converts an engine value back into its domain representation.
// Nil and unknown kinds pass through, mirroring ToStorage.
func FromStorage(kind ScalarKind, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch kind {
	case KindBoolean:
		switch v := value.(type) {
		case int64:
			return v != 0, nil
		case int:
			return v != 0, nil
		case bool:
			return v, nil
		default:
			return nil, fmt.Errorf("codec: boolean column holds %T", value)
		}

	case KindTimestamp:
		raw, err := asString(value)
		if err != nil {
			return nil, fmt.Errorf("codec: timestamp column: %w", err)
		}
		dt, err := strfmt.ParseDateTime(raw)
		if err != nil {
			return nil, fmt.Errorf("codec: timestamp column holds %q: %w", raw, err)
		}
		return time.Time(dt), nil

	case KindText:
		return asString(value)

	case KindInteger:
		switch v := value.(type) {
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		default:
			return nil, fmt.Errorf("codec: integer column holds %T", value)
		}

	default:
		return value, nil
	}
}

// asString accepts both string and []byte since the driver may return
// TEXT columns as raw bytes.
func asString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("expected text, got %T", value)
	}
}
