package rag

import "strings"

// Normalize trims surrounding whitespace and lowercases raw. It is idempotent.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateQuery fails with ErrInvalidQuery when there is nothing to retrieve by.
func ValidateQuery(normalized, category string) error {
	if normalized == "" && strings.TrimSpace(category) == "" {
		return ErrInvalidQuery
	}
	return nil
}
