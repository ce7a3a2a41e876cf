// Package httpclient provides an instrumented HTTP client for fetching remote
// documents to scan for DOIs. It wraps outbound requests with a per-host
// circuit breaker, a shared rate limiter, retry with exponential backoff, and
// OpenTelemetry tracing.
//
// The client applies middleware-like processing in this order:
//
//	Circuit Breaker (per host) → Rate Limiter → OTEL Span → Retry → HTTP
//
// Construction:
//
//	client := httpclient.New(&cfg.Fetch, metrics, logger)
//
// Fetching a document body as text:
//
//	text, err := client.Fetch(ctx, "https://example.org/paper.html")
package httpclient

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net"
	"net/http"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/identifiers/internal/platform/config"
	"github.com/jsamuelsen11/identifiers/internal/platform/telemetry"
)

const (
	tracerName = "github.com/jsamuelsen11/identifiers/internal/platform/httpclient"

	defaultMaxBodyBytes = 1 << 20
	defaultMaxHosts     = 1024
)

// retryConfig holds the retry policy values extracted from config.RetryConfig
// using unexported types to avoid leaking the config package through the API.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is an instrumented HTTP client for document fetches. Each remote
// host gets its own circuit breaker so that one failing site does not block
// fetches from the others. Hosts come from callers, so only the most
// recently used CircuitBreaker.MaxHosts breakers are kept; a forgotten host
// starts over with a closed breaker.
type Client struct {
	httpClient   *http.Client
	userAgent    string
	maxBodyBytes int64
	breakerCfg   config.CircuitBreakerConfig
	limiter      *rate.Limiter // nil when rate limiting is disabled
	retryCfg     retryConfig
	metrics      *telemetry.Metrics
	logger       *slog.Logger

	mu       sync.Mutex
	breakers *lru.Cache[string, *gobreaker.CircuitBreaker[struct{}]]
}

// New creates an instrumented document-fetching client. If metrics is nil,
// metric recording is skipped. Unless cfg.AllowPrivateNetworks is set,
// connections to loopback, private, and link-local addresses are refused
// after DNS resolution.
func New(cfg *config.FetchConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	dialer := &net.Dialer{Timeout: cfg.Timeout}
	if !cfg.AllowPrivateNetworks {
		dialer.Control = denyPrivateAddress
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	if !cfg.AllowPrivateNetworks {
		// Through a proxy the dialer only sees the proxy's address, so the
		// private-address check would never see the target.
		transport.Proxy = nil
	}

	maxHosts := cfg.CircuitBreaker.MaxHosts
	if maxHosts <= 0 {
		maxHosts = defaultMaxHosts
	}
	// lru.New only fails for a non-positive size.
	breakers, _ := lru.New[string, *gobreaker.CircuitBreaker[struct{}]](maxHosts)

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		userAgent:    cfg.UserAgent,
		maxBodyBytes: maxBody,
		breakerCfg:   cfg.CircuitBreaker,
		limiter:      limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics:  metrics,
		logger:   logger,
		breakers: breakers,
	}
}

// Do executes an HTTP request through the full middleware pipeline:
// Circuit Breaker → Rate Limiter → OTEL Span → Retry → HTTP.
//
// When the request succeeds (non-retryable status), resp is non-nil with an
// open body that the caller must close. When all retries are exhausted for a
// retryable status, both resp (with open body) and err are non-nil; the caller
// should close resp.Body. When the circuit breaker rejects or a network error
// occurs, resp is nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method
	host := req.URL.Host

	var resp *http.Response
	_, err := c.breakerFor(host).Execute(func() (struct{}, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		// Bind span context to the request so http.Client.Do uses it for
		// cancellation, deadlines, and trace propagation.
		req = req.WithContext(spanCtx)

		retryErr := c.doWithRetry(spanCtx, req, &resp)
		c.finishSpan(span, resp, retryErr)

		return struct{}{}, retryErr
	})

	c.recordMetrics(ctx, method, host, start, resp, err)

	return resp, err
}

// breakerFor returns the circuit breaker for host, creating it on first use.
func (c *Client) breakerFor(host string) *gobreaker.CircuitBreaker[struct{}] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, ok := c.breakers.Get(host); ok {
		return cb
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        host,
		MaxRequests: toUint32(c.breakerCfg.HalfOpenLimit),
		Timeout:     c.breakerCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= c.breakerCfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// A refused private address says nothing about the host's health.
			return err == nil || errors.Is(err, ErrBlockedAddress)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state change",
				slog.String("host", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	c.breakers.Add(host, cb)
	return cb
}

// waitForRateLimit blocks until the rate limiter allows the request or the
// context is canceled. Returns nil immediately when rate limiting is disabled.
func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// startSpan creates an OTEL client span for the outbound request and injects
// trace context (W3C Trace Context) into the request headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(tracerName)

	ctx, span := tracer.Start(ctx, "HTTP "+req.Method+" "+req.URL.Host,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("server.address", req.URL.Host),
		),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

// finishSpan records the response outcome on the span.
func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records client request duration and count metrics.
// Metrics are recorded outside the circuit breaker so that circuit-open
// rejections are captured. Safe to call with nil metrics.
func (c *Client) recordMetrics(ctx context.Context, method, host string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	statusCode := 0
	result := "error"
	if resp != nil {
		statusCode = resp.StatusCode
		if statusCode < http.StatusBadRequest {
			result = "success"
		}
	}
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case errors.Is(err, ErrBlockedAddress):
		result = "blocked"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerHost.String(host),
		telemetry.AttrResult.String(result),
	)

	c.metrics.ClientRequestDuration.Record(ctx, duration, attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
