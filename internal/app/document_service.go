package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/identifiers/doi"
	"github.com/jsamuelsen11/identifiers/internal/domain"
	"github.com/jsamuelsen11/identifiers/internal/platform/telemetry"
	"github.com/jsamuelsen11/identifiers/internal/ports"
)

// Compile-time check that DocumentService implements ports.DocumentService.
var _ ports.DocumentService = (*DocumentService)(nil)

const (
	opExtractURL = "extract_url"

	resultFetchFailed = "fetch_failed"
)

// DocumentService implements ports.DocumentService. The fetched body is
// bounded by the fetcher, so the per-text size limit does not apply here.
type DocumentService struct {
	fetcher ports.DocumentFetcher
	metrics *telemetry.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewDocumentService creates a DocumentService. metrics may be nil.
func NewDocumentService(fetcher ports.DocumentFetcher, metrics *telemetry.Metrics, logger *slog.Logger) *DocumentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DocumentService{
		fetcher: fetcher,
		metrics: metrics,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
}

// ExtractURL fetches rawURL and extracts every DOI from its body.
func (s *DocumentService) ExtractURL(ctx context.Context, rawURL string) ([]doi.DOI, error) {
	ctx, span := s.tracer.Start(ctx, "DocumentService.ExtractURL",
		trace.WithAttributes(attribute.String("url.full", rawURL)),
	)
	defer span.End()

	if err := domain.ValidateURL("url", rawURL); err != nil {
		s.record(ctx, resultRejected)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.logger.InfoContext(ctx, "extracting DOIs from document", slog.String("url", rawURL))

	body, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		s.logger.WarnContext(ctx, "document unavailable",
			slog.String("operation", "ExtractURL"),
			slog.String("url", rawURL),
			slog.Any("error", err),
		)
		s.record(ctx, resultFetchFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, err
	}

	dois := doi.Extract(body)

	s.logger.DebugContext(ctx, "extracted DOIs from document",
		slog.String("url", rawURL),
		slog.Int("bytes", len(body)),
		slog.Int("count", len(dois)),
	)
	s.record(ctx, resultSuccess)
	if s.metrics != nil {
		s.metrics.DOIsExtracted.Add(ctx, int64(len(dois)))
		s.metrics.TextBytes.Record(ctx, int64(len(body)),
			metric.WithAttributes(telemetry.AttrOperation.String(opExtractURL)))
	}
	span.SetAttributes(
		attribute.Int("doi.text.bytes", len(body)),
		attribute.Int("doi.count", len(dois)),
	)
	return dois, nil
}

func (s *DocumentService) record(ctx context.Context, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecognizerCallTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(opExtractURL),
		telemetry.AttrResult.String(result),
	))
}
