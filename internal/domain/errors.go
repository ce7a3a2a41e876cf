package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors for errors.Is checks. Adapters wrap them and the HTTP layer
// maps each one to a status code.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrTooLarge    = errors.New("too large")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError carries per-field failures. It matches ErrValidation under
// errors.Is; use errors.As to reach Fields.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the fields in sorted order so the message is stable.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	b.WriteString(": ")
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
