package service

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("handler: %w", &ValidationError{Field: "userId", Message: "required"})

	if got := err.Error(); got != "handler: userId required" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("wrapped ValidationError should match ErrInvalidInput")
	}
	if errors.Is(err, ErrNotConfigured) {
		t.Error("ValidationError should not match ErrNotConfigured")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "userId" {
		t.Errorf("errors.As() = %v, want field userId", ve)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "failed to fetch history") != nil {
		t.Error("WrapError(nil) should be nil")
	}

	upstream := errors.New("record store returned status 500")
	got := WrapError(upstream, "failed to count knowledge")
	if got.Error() != "failed to count knowledge: record store returned status 500" {
		t.Errorf("WrapError() = %q", got)
	}
	if !errors.Is(got, upstream) {
		t.Error("WrapError() should keep the original error in the chain")
	}
}
