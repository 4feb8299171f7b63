package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested record is not found
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write is rejected by a uniqueness or
	// referential constraint
	ErrConflict = errors.New("conflicting record")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when a caller is not authorized to perform an action
	ErrUnauthorized = errors.New("unauthorized")
)
