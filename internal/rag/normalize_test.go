package rag

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  젖몸살  ", "젖몸살"},
		{"Latch POSITION", "latch position"},
		{"\t\n", ""},
		{"", ""},
		{" 밤수유 Tips\n", "밤수유 tips"},
	}

	for _, tt := range tests {
		got := Normalize(tt.in)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := Normalize(got); again != got {
			t.Errorf("Normalize is not idempotent for %q: %q then %q", tt.in, got, again)
		}
	}
}

func TestValidateQuery(t *testing.T) {
	if err := ValidateQuery("", ""); !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("ValidateQuery(empty, empty) = %v, want ErrInvalidQuery", err)
	}
	if err := ValidateQuery("", "  "); !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("ValidateQuery(empty, blank) = %v, want ErrInvalidQuery", err)
	}
	if err := ValidateQuery("", "A"); err != nil {
		t.Errorf("ValidateQuery(empty, A) = %v, want nil", err)
	}
	if err := ValidateQuery("젖몸살", ""); err != nil {
		t.Errorf("ValidateQuery(query, empty) = %v, want nil", err)
	}
}
