package document

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/identifiers/internal/platform/httpclient"
	"github.com/jsamuelsen11/identifiers/internal/ports"
)

// Compile-time interface check.
var _ ports.DocumentFetcher = (*Fetcher)(nil)

// Fetcher implements [ports.DocumentFetcher] on top of [httpclient.Client],
// which supplies per-host circuit breaking, retries, rate limiting, and the
// private-address guard.
type Fetcher struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewFetcher creates a Fetcher. A nil logger is replaced with a no-op logger.
func NewFetcher(client *httpclient.Client, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Fetcher{client: client, logger: logger}
}

// Fetch returns the body of the document at rawURL, or a domain error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	body, err := f.client.Fetch(ctx, rawURL)
	if err != nil {
		f.logger.WarnContext(ctx, "document fetch failed",
			slog.String("operation", "Fetch"),
			slog.String("url", rawURL),
			slog.Any("error", err),
		)
		return "", TranslateFetchError(err)
	}
	return body, nil
}
