package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a request is missing a required field or has a malformed one.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExternalService is returned when the generation provider fails.
	ErrExternalService = errors.New("external service error")
	// ErrNotConfigured is returned when the record store has no credentials.
	ErrNotConfigured = errors.New("not configured")
	// ErrUnauthorized is returned for a wrong admin password or a missing bearer token.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError names the request field that failed validation.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// WrapError prefixes err with msg. A nil err stays nil.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
