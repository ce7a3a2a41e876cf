package dto

import (
	"strings"

	"github.com/jsamuelsen11/identifiers/internal/domain"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// TextRequest represents the JSON body for validate and extract requests.
type TextRequest struct {
	Text string `json:"text"`
}

// Validate checks that the text is present. Size limits are enforced by the
// application service, which owns the configured maximum.
// Returns a *domain.ValidationError if any checks fail.
func (r *TextRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &domain.ValidationError{Fields: map[string]string{"text": msgRequired}}
	}
	return nil
}

// BatchExtractRequest represents the JSON body for batch extraction.
type BatchExtractRequest struct {
	Texts []string `json:"texts"`
}

// Validate checks that the batch is non-empty. Individual blank texts are not
// rejected here; they fail on their own in the batch result.
// Returns a *domain.ValidationError if any checks fail.
func (r *BatchExtractRequest) Validate() error {
	if len(r.Texts) == 0 {
		return &domain.ValidationError{Fields: map[string]string{"texts": msgMustNotEmpty}}
	}
	return nil
}

// URLRequest represents the JSON body for extracting DOIs from a remote
// document.
type URLRequest struct {
	URL string `json:"url"`
}

// Validate checks that the URL is present. Scheme and host rules are enforced
// by the application service.
// Returns a *domain.ValidationError if any checks fail.
func (r *URLRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return &domain.ValidationError{Fields: map[string]string{"url": msgRequired}}
	}
	return nil
}
