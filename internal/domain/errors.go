package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an identifier resolves to neither an item of
// the current category nor a category the board can navigate into.
var ErrNotFound = errors.New("not found")

// NotFoundError carries the identifier that could not be resolved
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q: %s", e.ID, ErrNotFound)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(id string) error {
	return &NotFoundError{ID: id}
}
