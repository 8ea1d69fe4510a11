package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a lookup by id that resolved nothing.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateProduct signals adding a product that is already part
	// of a consumption calculation. Surfaced as a notice, no state change.
	ErrDuplicateProduct = errors.New("product already added to this calculation")
)

// ValidationError blocks a save: a required field is missing or a
// collection is empty. Nothing is persisted when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StorageError wraps a persistence driver failure so the shell can
// display it as a generic storage problem.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
