package types

import (
	"errors"
	"fmt"
)

// Store and patch errors.
var (
	ErrStoreClosed    = errors.New("store is closed")
	ErrAlreadyOpen    = errors.New("store is already open")
	ErrTableUnknown   = errors.New("unknown table")
	ErrUnknownField   = errors.New("unknown field")
	ErrEmptyPatchList = errors.New("patch list must not be empty")
	ErrNotFound       = errors.New("record not found")
)

// Domain rule errors.
var (
	ErrInvalidCredentials = errors.New("username or password is incorrect")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrAlreadyInCart      = errors.New("product is already in the cart")
	ErrNotInCart          = errors.New("product is not in the cart")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrCategoryInUse      = errors.New("category has products referencing it")
	ErrProductInUse       = errors.New("product has orders referencing it")
	ErrNoSession          = errors.New("no active session")
)

// InitError reports that the store could not be opened or bootstrapped.
// It is fatal: callers surface it with a retry, nothing proceeds past it.
type InitError struct {
	Err error
}

func (e *InitError) Error() string { return fmt.Sprintf("initializing store: %v", e.Err) }
func (e *InitError) Unwrap() error { return e.Err }

// QueryError reports a failed read against a table.
type QueryError struct {
	Table string
	Err   error
}

func (e *QueryError) Error() string { return fmt.Sprintf("querying %s: %v", e.Table, e.Err) }
func (e *QueryError) Unwrap() error { return e.Err }

// WriteError reports a failed write: a constraint violation or a malformed
// patch list. The wrapped error carries the storage-level detail for the
// caller to interpret (for example a unique username collision).
type WriteError struct {
	Table string
	Err   error
}

func (e *WriteError) Error() string { return fmt.Sprintf("writing %s: %v", e.Table, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// ValidationError reports a client-side input check failure. It is raised
// before any store call and never originates from the storage layer.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
