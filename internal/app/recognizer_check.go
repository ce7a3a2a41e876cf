package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/identifiers/doi"
	"github.com/jsamuelsen11/identifiers/internal/ports"
)

// Compile-time check that RecognizerCheck implements ports.HealthChecker.
var _ ports.HealthChecker = (*RecognizerCheck)(nil)

// RecognizerCheck reports the recognizer healthy when a known DOI, embedded
// in surrounding text, is extracted back unchanged.
type RecognizerCheck struct {
	sentinel doi.DOI
}

// NewRecognizerCheck creates a RecognizerCheck for the given sentinel DOI.
func NewRecognizerCheck(sentinel doi.DOI) *RecognizerCheck {
	return &RecognizerCheck{sentinel: sentinel}
}

// Name returns "recognizer".
func (c *RecognizerCheck) Name() string {
	return "recognizer"
}

// HealthCheck extracts the sentinel from a short sentence and compares the result.
func (c *RecognizerCheck) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.sentinel.IsZero() {
		return errors.New("recognizer sentinel is not configured")
	}

	got := doi.Extract("see " + c.sentinel.String() + " end")
	if len(got) != 1 || got[0] != c.sentinel {
		return fmt.Errorf("recognizer returned %v for sentinel %q", got, c.sentinel)
	}
	return nil
}
