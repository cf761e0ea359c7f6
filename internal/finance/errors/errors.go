package errors

import (
	"errors"
	"fmt"
)

// A missing entity and an entity owned by somebody else are both
// ErrNotFound on purpose: a non-owner must not learn that the row exists.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthenticated = errors.New("authentication required")
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func NewFieldValidationError(field, msg string) error {
	return &ValidationError{Msg: fmt.Sprintf("%s: %s", field, msg)}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// ErrInvalidAccountOrCategory is raised when a transaction references an
// account or category the caller does not own. It is attached to the whole
// record, not a single field.
var ErrInvalidAccountOrCategory = NewValidationError("Selected account or category is invalid")

var (
	ErrNoAccounts   = NewValidationError("Create at least one account before adding transactions")
	ErrNoCategories = NewValidationError("Create at least one category before adding transactions")
)
