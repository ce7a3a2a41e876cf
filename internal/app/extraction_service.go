// Package app provides application services that orchestrate use cases by
// coordinating between the doi recognizer, domain rules, and infrastructure
// through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/identifiers/doi"
	"github.com/jsamuelsen11/identifiers/internal/app/fanout"
	"github.com/jsamuelsen11/identifiers/internal/domain"
	"github.com/jsamuelsen11/identifiers/internal/platform/logging"
	"github.com/jsamuelsen11/identifiers/internal/platform/telemetry"
	"github.com/jsamuelsen11/identifiers/internal/ports"
)

// Compile-time check that ExtractionService implements ports.DOIService.
var _ ports.DOIService = (*ExtractionService)(nil)

const tracerName = "github.com/jsamuelsen11/identifiers/internal/app"

// Operation and result labels for recognizer metrics.
const (
	opValidate = "validate"
	opExtract  = "extract"

	resultSuccess  = "success"
	resultInvalid  = "invalid"
	resultRejected = "rejected"
)

// Limits bounds the input a single call may hand to the recognizer.
type Limits struct {
	MaxTextBytes int
	MaxBatchSize int
	BatchWorkers int
}

// ExtractionService implements ports.DOIService on top of the doi package.
// It enforces input limits, fans batch work out across a bounded worker pool,
// and emits logs, spans, and metrics. Recognition itself is delegated to doi.
type ExtractionService struct {
	limits  Limits
	metrics *telemetry.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewExtractionService creates an ExtractionService. metrics may be nil when
// telemetry is disabled; a nil logger is replaced with a no-op logger.
func NewExtractionService(limits Limits, metrics *telemetry.Metrics, logger *slog.Logger) *ExtractionService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ExtractionService{
		limits:  limits,
		metrics: metrics,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
}

// Validate returns the first DOI found in text.
func (s *ExtractionService) Validate(ctx context.Context, text string) (doi.DOI, error) {
	ctx, span := s.tracer.Start(ctx, "ExtractionService.Validate",
		trace.WithAttributes(attribute.Int("doi.text.bytes", len(text))),
	)
	defer span.End()

	s.logger.InfoContext(ctx, "validating DOI", logging.Text("text", text))

	if err := domain.ValidateText("text", text, s.limits.MaxTextBytes); err != nil {
		s.record(ctx, opValidate, resultRejected, len(text))
		span.SetStatus(codes.Error, err.Error())
		return doi.DOI{}, err
	}

	d, err := doi.Parse(text)
	if err != nil {
		s.logger.InfoContext(ctx, "no DOI found",
			slog.String("operation", "Validate"),
			logging.Text("text", text),
			slog.Any("error", err),
		)
		s.record(ctx, opValidate, resultInvalid, len(text))
		span.SetStatus(codes.Error, "invalid DOI")
		return doi.DOI{}, err
	}

	s.record(ctx, opValidate, resultSuccess, len(text))
	span.SetAttributes(attribute.String("doi.value", d.String()))
	return d, nil
}

// Extract returns every DOI in text in order of appearance.
func (s *ExtractionService) Extract(ctx context.Context, text string) ([]doi.DOI, error) {
	return s.extract(ctx, "text", text)
}

// extract is Extract with field naming the input in validation errors.
func (s *ExtractionService) extract(ctx context.Context, field, text string) ([]doi.DOI, error) {
	ctx, span := s.tracer.Start(ctx, "ExtractionService.Extract",
		trace.WithAttributes(attribute.Int("doi.text.bytes", len(text))),
	)
	defer span.End()

	if err := domain.ValidateText(field, text, s.limits.MaxTextBytes); err != nil {
		s.logger.InfoContext(ctx, "rejected text for extraction",
			slog.String("operation", "Extract"),
			logging.Text("text", text),
			slog.Any("error", err),
		)
		s.record(ctx, opExtract, resultRejected, len(text))
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	dois := doi.Extract(text)

	s.logger.DebugContext(ctx, "extracted DOIs",
		logging.Text("text", text),
		slog.Int("count", len(dois)),
	)
	s.record(ctx, opExtract, resultSuccess, len(text))
	if s.metrics != nil {
		s.metrics.DOIsExtracted.Add(ctx, int64(len(dois)))
	}
	span.SetAttributes(attribute.Int("doi.count", len(dois)))
	return dois, nil
}

// ExtractBatch runs Extract over each text with at most Limits.BatchWorkers
// extractions in flight. Results are returned in input order.
func (s *ExtractionService) ExtractBatch(ctx context.Context, texts []string) ([]ports.BatchResult, error) {
	ctx, span := s.tracer.Start(ctx, "ExtractionService.ExtractBatch",
		trace.WithAttributes(attribute.Int("doi.batch.size", len(texts))),
	)
	defer span.End()

	s.logger.InfoContext(ctx, "extracting DOIs from batch", slog.Int("size", len(texts)))

	if err := domain.ValidateBatch("texts", len(texts), s.limits.MaxBatchSize); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	indices := make([]int, len(texts))
	for i := range indices {
		indices[i] = i
	}
	results := fanout.Run(ctx, s.limits.BatchWorkers, indices, func(ctx context.Context, i int) ([]doi.DOI, error) {
		return s.extract(ctx, fmt.Sprintf("texts[%d]", i), texts[i])
	})

	out := make([]ports.BatchResult, len(results))
	failed := 0
	for i, r := range results {
		out[i] = ports.BatchResult{Index: i, DOIs: r.Value, Err: r.Err}
		if r.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		s.logger.WarnContext(ctx, "batch extraction had failures",
			slog.String("operation", "ExtractBatch"),
			slog.Int("size", len(texts)),
			slog.Int("failed", failed),
		)
	}
	span.SetAttributes(attribute.Int("doi.batch.failed", failed))
	return out, nil
}

// record counts one recognizer call. Safe to call with nil metrics.
func (s *ExtractionService) record(ctx context.Context, operation, result string, size int) {
	if s.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result),
	)
	s.metrics.RecognizerCallTotal.Add(ctx, 1, attrs)
	s.metrics.TextBytes.Record(ctx, int64(size), metric.WithAttributes(telemetry.AttrOperation.String(operation)))
}
