/*
Package errors provides semantic error types for the EntitySQL library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrInvalidIdentifier    = errors.New("invalid identifier")
	    ErrNotRegistered        = errors.New("entity type not registered")
	    ErrAlreadyRegistered    = errors.New("entity type already registered")
	    ErrNotInitialized       = errors.New("entity manager not initialized")
	    ErrNoPrimaryKey         = errors.New("no primary key declared")
	    ErrNoUpdateFields       = errors.New("no update fields provided")
	    ErrMalformedRow         = errors.New("malformed row")
	    ErrStorageFailure       = errors.New("storage failure")
	    ErrUnknownCriteriaField = errors.New("unknown criteria field")
	    ErrNestedTransaction    = errors.New("nested transaction not supported")
	)

Usage:

	// Check error type
	user, err := mapper.FindByKey(ctx, 42)
	if err != nil {
	    if errors.IsStorageFailure(err) {
	        // The engine rejected the statement; the mapping layer is fine.
	        return nil, err
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewInvalidIdentifierError("table", "users; drop")
	err := errors.NewMalformedRowError("users", "created_at", "not a timestamp")
	err := errors.NewStorageError("save", engineErr)

Registration-time errors (ErrInvalidIdentifier, ErrAlreadyRegistered) are
raised when a descriptor is built or registered, never deferred to query
time. The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
