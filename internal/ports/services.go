package ports

import (
	"context"

	"github.com/jsamuelsen11/identifiers/doi"
)

// DOIService defines the service port for DOI recognition.
// Implemented by the application layer; called by inbound adapters (handlers).
type DOIService interface {
	// Validate returns the first DOI found in text.
	// Returns domain.ErrValidation if text is blank or too large, and a
	// *doi.InvalidError (wrapping doi.ErrInvalid) if text contains no DOI.
	Validate(ctx context.Context, text string) (doi.DOI, error)

	// Extract returns every DOI in text in order of appearance. A text with
	// no DOIs yields an empty slice and a nil error.
	// Returns domain.ErrValidation if text is blank or too large.
	Extract(ctx context.Context, text string) ([]doi.DOI, error)

	// ExtractBatch runs Extract over each text concurrently. Uses partial
	// success semantics: an invalid item is reported in its BatchResult and
	// does not fail the others. Returns a hard error only for request-level
	// failures (empty or oversized batch).
	ExtractBatch(ctx context.Context, texts []string) ([]BatchResult, error)
}

// BatchResult holds the outcome of extracting DOIs from one text of a batch.
// Index is the position of the text in the request. Either DOIs is populated
// or Err is non-nil.
type BatchResult struct {
	Index int
	DOIs  []doi.DOI
	Err   error
}
