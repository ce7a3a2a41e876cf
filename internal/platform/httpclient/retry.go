package httpclient

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/identifiers/internal/platform/logging"
)

// jitterFraction bounds the random spread applied to each backoff delay.
const jitterFraction = 0.25

// doWithRetry sends req until it gets a non-retryable outcome or runs out of
// attempts. Requests with a body are replayed through req.GetBody; a request
// whose body cannot be replayed is sent once.
//
// The response is handed back through resp so the bodyclose linter can follow
// ownership. On exhaustion the last response is returned with its body open.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	attempts := c.retryCfg.maxAttempts
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		attempts = 1
	}

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, retryAfter, lastErr); err != nil {
				return err
			}
			if err := rewindBody(req); err != nil {
				return err
			}
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			retryAfter = 0
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, req.URL.Host)
		retryAfter = parseRetryAfter(r.Header.Get("Retry-After"), time.Now())

		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}

		// Drain so the connection goes back to the pool.
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}

	return lastErr
}

func rewindBody(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

// waitForRetry sleeps before the next attempt. A server-supplied Retry-After
// wins over the computed backoff but is still capped at maxInterval.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, retryAfter time.Duration, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)
	if retryAfter > 0 {
		delay = min(retryAfter, c.retryCfg.maxInterval)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying document fetch",
		slog.String("host", req.URL.Host),
		slog.String("url", req.URL.String()),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseRetryAfter reads a Retry-After header in either delta-seconds or
// HTTP-date form. Zero means the header was absent, malformed, or in the past.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns the delay before retry number attempt (1 is the first
// retry): initialInterval grown by multiplier per attempt, capped at
// maxInterval, then spread by jitterFraction either way.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	delay = min(delay, float64(cfg.maxInterval))
	delay += delay * jitterFraction * (2*randFloat64() - 1)
	return time.Duration(max(delay, 0))
}

// randFloat64 returns a uniformly distributed value in [0, 1).
func randFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and refused private addresses are final; everything else,
// network errors included, is retried.
func isRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, ErrBlockedAddress):
		return false
	default:
		return true
	}
}

// isRetryableStatus reports whether a response status is transient: 408, 429,
// and any 5xx.
func isRetryableStatus(statusCode int) bool {
	switch {
	case statusCode == http.StatusRequestTimeout, statusCode == http.StatusTooManyRequests:
		return true
	default:
		return statusCode >= http.StatusInternalServerError
	}
}
