package models

import (
	"errors"
	"fmt"
)

// ErrConflict signals that two meeting times overlap on at least one
// shared day. Wrapped errors can be tested with errors.Is.
var ErrConflict = errors.New("time conflict")

// ErrNilCourse is returned by schedule mutations handed a nil course.
// Probe methods such as CanAdd return false instead.
var ErrNilCourse = errors.New("course cannot be nil")

// ValidationError reports an invalid field value at a constructor or
// setter boundary. No entity is ever left partially constructed: the
// error is returned before anything is assigned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidTransitionError reports a structurally illegal character
// sequence encountered while validating a course name. A name that
// scans cleanly but stops short of an accepting state is not an
// error; IsValidCourseName just returns false for it.
type InvalidTransitionError struct {
	Reason string
}

func (e *InvalidTransitionError) Error() string { return e.Reason }
