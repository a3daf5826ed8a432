package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrNoActiveSession     = errors.New("no active session")
	ErrActiveSessionExists = errors.New("active session already exists")
	ErrPersistence         = errors.New("persistence failure")
	ErrCorruptState        = errors.New("corrupt persisted state")
	ErrExamWindowClosed    = errors.New("exam window is already over or too close")
)

// ValidationError reports a numeric input outside its inclusive range.
type ValidationError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// CheckRange returns a *ValidationError when value is outside [min, max].
func CheckRange(field string, value, min, max int) error {
	if value < min || value > max {
		return &ValidationError{Field: field, Value: value, Min: min, Max: max}
	}
	return nil
}
