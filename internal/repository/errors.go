package repository

import "errors"

// ErrNotFound is returned for both missing rows and rows the store was
// asked to mutate but did not touch.
var ErrNotFound = errors.New("not found")

// DuplicateError reports a unique-constraint violation mapped back to
// the API field that caused it (email, title). The service layer turns
// it into a field-keyed validation error.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return e.Field + " already in use"
}
