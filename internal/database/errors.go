package database

import (
	"errors"
	"fmt"
)

// Stable error kinds surfaced across the persistence boundary. Handlers show
// err.Error() to the user as-is, so messages are kept short and presentable.
var (
	ErrVisitNotFound      = errors.New("Visit not found")
	ErrInvalidCredentials = errors.New("Invalid username or password")
)

// ValidationError marks a submission that was rejected before anything was
// written: a missing required field or an unparseable value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func missingField(field string) error {
	return &ValidationError{Field: field, Reason: "required field is missing"}
}
