package domain

import (
	"fmt"
	"strings"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// ValidateText checks that a caller-supplied text is non-blank and at most
// maxBytes long. field names the offending input in the returned
// *ValidationError (e.g. "text" or "texts[3]").
func ValidateText(field, text string, maxBytes int) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Fields: map[string]string{field: msgRequired}}
	}
	if len(text) > maxBytes {
		return &ValidationError{Fields: map[string]string{
			field: fmt.Sprintf("must be at most %d bytes, got %d", maxBytes, len(text)),
		}}
	}
	return nil
}

// ValidateBatch checks that a batch holds between 1 and maxSize texts.
func ValidateBatch(field string, size, maxSize int) error {
	if size == 0 {
		return &ValidationError{Fields: map[string]string{field: "must not be empty"}}
	}
	if size > maxSize {
		return &ValidationError{Fields: map[string]string{
			field: fmt.Sprintf("must contain at most %d items, got %d", maxSize, size),
		}}
	}
	return nil
}
