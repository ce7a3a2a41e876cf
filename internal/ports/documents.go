package ports

import (
	"context"

	"github.com/jsamuelsen11/identifiers/doi"
)

// DocumentFetcher retrieves the text of a remote document. Implemented by an
// outbound adapter; failures are reported as domain errors.
type DocumentFetcher interface {
	// Fetch returns the body of the document at rawURL.
	// Returns domain.ErrNotFound, domain.ErrForbidden, domain.ErrUnavailable,
	// or a *domain.ValidationError keyed on "url" for documents that cannot
	// be scanned (blocked address, unsupported type, too large).
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// DocumentService extracts DOIs from documents reachable by URL.
type DocumentService interface {
	// ExtractURL fetches rawURL and returns every DOI in its body in order
	// of appearance. Returns domain.ErrValidation if rawURL is not an
	// absolute http or https URL.
	ExtractURL(ctx context.Context, rawURL string) ([]doi.DOI, error)
}
