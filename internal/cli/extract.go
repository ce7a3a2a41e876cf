package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/identifiers/doi"
	"github.com/jsamuelsen11/identifiers/internal/buildinfo"
	"github.com/jsamuelsen11/identifiers/internal/platform/config"
	"github.com/jsamuelsen11/identifiers/internal/platform/httpclient"
)

// stdinSource names standard input on the command line.
const stdinSource = "-"

var errInputTooLarge = errors.New("input exceeds --max-bytes")

type extractOptions struct {
	unique   bool
	timeout  time.Duration
	maxBytes int64
}

func extractCmd(opts *globalOptions) *cobra.Command {
	var eo extractOptions

	c := &cobra.Command{
		Use:   "extract [file|url|-]...",
		Short: "Print every DOI found in files, URLs, or standard input",
		Long: "Scans each source in order and prints the DOIs it contains.\n" +
			"Sources starting with http:// or https:// are fetched; \"-\" or no\n" +
			"arguments reads standard input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinSource}
			}

			r := newReader(cmd.InOrStdin(), eo, opts.logger)

			var records []record
			for _, src := range args {
				text, err := r.read(cmd.Context(), src)
				if err != nil {
					return fmt.Errorf("reading %s: %w", src, err)
				}
				found := doi.Extract(text)
				opts.logger.Debug("scanned source",
					slog.String("source", src),
					slog.Int("bytes", len(text)),
					slog.Int("count", len(found)),
				)
				for _, d := range found {
					records = append(records, newRecord(d, src))
				}
			}

			if eo.unique {
				records = uniqueRecords(records)
			}
			return writeRecords(cmd.OutOrStdout(), opts.output, records)
		},
	}

	c.Flags().BoolVarP(&eo.unique, "unique", "u", false, "Print each DOI once, at its first occurrence")
	c.Flags().DurationVar(&eo.timeout, "timeout", 15*time.Second, "Timeout for fetching a URL")
	c.Flags().Int64Var(&eo.maxBytes, "max-bytes", 16<<20, "Maximum size of a single source in bytes")
	return c
}

// uniqueRecords drops repeated DOIs, keeping the first occurrence. DOIs are
// compared byte for byte.
func uniqueRecords(in []record) []record {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, r := range in {
		if _, dup := seen[r.DOI]; dup {
			continue
		}
		seen[r.DOI] = struct{}{}
		out = append(out, r)
	}
	return out
}

// reader loads the text of a source. The HTTP client is built on first use.
type reader struct {
	stdin  io.Reader
	opts   extractOptions
	logger *slog.Logger
	client *httpclient.Client
}

func newReader(stdin io.Reader, opts extractOptions, logger *slog.Logger) *reader {
	return &reader{stdin: stdin, opts: opts, logger: logger}
}

func (r *reader) read(ctx context.Context, src string) (string, error) {
	switch {
	case src == stdinSource:
		return readLimited(r.stdin, r.opts.maxBytes)
	case isURL(src):
		return r.httpClient().Fetch(ctx, src)
	default:
		f, err := os.Open(src)
		if err != nil {
			return "", err
		}
		defer func() { _ = f.Close() }()
		return readLimited(f, r.opts.maxBytes)
	}
}

func (r *reader) httpClient() *httpclient.Client {
	if r.client == nil {
		r.client = httpclient.New(fetchConfig(r.opts), nil, r.logger)
	}
	return r.client
}

// fetchConfig is the outbound policy for command-line fetches. Private
// addresses are allowed since the user chose the URL.
func fetchConfig(opts extractOptions) *config.FetchConfig {
	return &config.FetchConfig{
		Enabled:              true,
		Timeout:              opts.timeout,
		MaxBodyBytes:         opts.maxBytes,
		UserAgent:            "doiscan/" + buildinfo.Version,
		AllowPrivateNetworks: true,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
			MaxHosts:      64,
		},
	}
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func readLimited(rd io.Reader, maxBytes int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(rd, maxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w (%d bytes)", errInputTooLarge, maxBytes)
	}
	return string(data), nil
}
