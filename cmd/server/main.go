// Package main is the entry point for the DOI extraction service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/identifiers/internal/adapters/clients/document"
	adapthttp "github.com/jsamuelsen11/identifiers/internal/adapters/http"
	"github.com/jsamuelsen11/identifiers/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/identifiers/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/identifiers/internal/app"
	"github.com/jsamuelsen11/identifiers/internal/platform/config"
	"github.com/jsamuelsen11/identifiers/internal/platform/health"
	"github.com/jsamuelsen11/identifiers/internal/platform/httpclient"
	"github.com/jsamuelsen11/identifiers/internal/platform/logging"
	"github.com/jsamuelsen11/identifiers/internal/platform/telemetry"
	"github.com/jsamuelsen11/identifiers/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv(config.EnvPrefix + "PROFILE")
	if profile == "" {
		return errors.New(config.EnvPrefix + "PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*app.RecognizerCheck](injector))

	// Refuse to start if the recognizer cannot find its own sentinel DOI.
	for name, err := range registry.CheckAll(ctx) {
		if err != nil {
			return fmt.Errorf("startup health check %s: %w", name, err)
		}
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.DOIService, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		limits := app.Limits{
			MaxTextBytes: cfg.Extraction.MaxTextBytes,
			MaxBatchSize: cfg.Extraction.MaxBatchSize,
			BatchWorkers: cfg.Extraction.BatchWorkers,
		}
		return app.NewExtractionService(limits, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*app.RecognizerCheck, error) {
		return app.NewRecognizerCheck(cfg.Extraction.HealthDOI), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Server.HealthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DOIHandler, error) {
		svc := do.MustInvoke[ports.DOIService](i)
		return handlers.NewDOIHandler(svc), nil
	})

	// Remote document extraction. Providers are lazy, so none of these are
	// built unless fetch.enabled is set.
	do.Provide(injector, func(i do.Injector) (ports.DocumentFetcher, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Fetch, metrics, logger)
		return document.NewFetcher(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DocumentService, error) {
		fetcher := do.MustInvoke[ports.DocumentFetcher](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewDocumentService(fetcher, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DocumentHandler, error) {
		svc := do.MustInvoke[ports.DocumentService](i)
		return handlers.NewDocumentHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		routes := adapthttp.Handlers{
			DOI:    do.MustInvoke[*handlers.DOIHandler](i),
			Health: do.MustInvoke[*handlers.HealthHandler](i),
		}
		if cfg.Fetch.Enabled {
			routes.Document = do.MustInvoke[*handlers.DocumentHandler](i)
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(routes,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
