package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrDuplicateEntry is returned when trying to create a duplicate entity
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrValidation is returned when entity validation fails
	ErrValidation = errors.New("validation error")
)

// RepositoryError represents a repository-specific error with additional context
type RepositoryError struct {
	Op     string // Operation that failed
	Entity string // Entity type
	Table  string // Backing table
	Err    error  // Underlying error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s %s operation failed on table %s: %v", e.Entity, e.Op, e.Table, e.Err)
	}
	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, table string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		Table:  table,
		Err:    err,
	}
}

// DuplicateError creates an error for an entity that already exists
func DuplicateError(entity, table string, err error) *RepositoryError {
	return NewRepositoryError("create", entity, table, fmt.Errorf("%w: %v", ErrDuplicateEntry, err))
}

// ValidationError creates an error for an entity that failed validation
func ValidationError(entity string, err error) *RepositoryError {
	return NewRepositoryError("validate", entity, "", fmt.Errorf("%w: %v", ErrValidation, err))
}

// IsDuplicate reports whether err is a duplicate entry error
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateEntry)
}
