package document

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned when a required key is missing in a document.
	ErrKeyNotFound = errors.New("key not found")
	// ErrMalformed is returned when a document can not be decoded.
	ErrMalformed = errors.New("malformed document")
)

// FieldError names the missing key of a document.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %q", ErrKeyNotFound, e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrKeyNotFound
}
