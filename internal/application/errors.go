package application

import (
	"errors"
	"fmt"

	"aacboard/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = domain.ErrNotFound
	ErrCategoryExists = errors.New("category already exists")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// OverwriteError is returned when adding a category would replace an
// existing one and its items
type OverwriteError struct {
	ID    string
	Name  string
	Items int
}

func (e *OverwriteError) Error() string {
	return fmt.Sprintf("category %s (%s) already exists with %d items", e.ID, e.Name, e.Items)
}

func (e *OverwriteError) Is(target error) bool {
	return target == ErrCategoryExists
}
