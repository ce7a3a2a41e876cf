// Package document implements the outbound adapter that fetches remote
// documents for DOI extraction. It sits between the application layer and
// [httpclient.Client] and translates transport failures into domain errors.
package document

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/identifiers/internal/domain"
	"github.com/jsamuelsen11/identifiers/internal/platform/httpclient"
)

// urlField is the request field blamed for documents that cannot be scanned.
const urlField = "url"

// TranslateFetchError maps an error from [httpclient.Client.Fetch] to a
// domain error. Context errors pass through unchanged so callers can tell a
// cancelled request from a failing host.
func TranslateFetchError(err error) error {
	if err == nil {
		return nil
	}

	var serr *httpclient.StatusError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err

	case errors.As(err, &serr):
		return translateStatus(serr)

	case errors.Is(err, httpclient.ErrBlockedAddress):
		return &domain.ValidationError{Fields: map[string]string{
			urlField: "must resolve to a public address",
		}}

	case errors.Is(err, httpclient.ErrUnsupportedContent):
		return &domain.ValidationError{Fields: map[string]string{
			urlField: "document content type is not text",
		}}

	case errors.Is(err, httpclient.ErrBodyTooLarge):
		return &domain.ValidationError{Fields: map[string]string{
			urlField: "document is too large",
		}}

	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("document host is failing: %w", domain.ErrUnavailable)

	default:
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
}

func translateStatus(serr *httpclient.StatusError) error {
	detail := fmt.Sprintf("document host returned %d %s", serr.StatusCode, http.StatusText(serr.StatusCode))

	switch serr.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	default:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	}
}
