package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Extraction.validate(),
		c.Fetch.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if s.HealthCheckTimeout <= 0 {
		errs = append(errs, errors.New("server.health_check_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (e *ExtractionConfig) validate() error {
	var errs []error

	if e.MaxTextBytes < 1 {
		errs = append(errs, fmt.Errorf("extraction.max_text_bytes must be >= 1, got %d", e.MaxTextBytes))
	}
	if e.MaxBatchSize < 1 {
		errs = append(errs, fmt.Errorf("extraction.max_batch_size must be >= 1, got %d", e.MaxBatchSize))
	}
	if e.BatchWorkers < 1 {
		errs = append(errs, fmt.Errorf("extraction.batch_workers must be >= 1, got %d", e.BatchWorkers))
	}
	if e.HealthDOI.IsZero() {
		errs = append(errs, errors.New("extraction.health_doi must be a valid DOI"))
	}

	return errors.Join(errs...)
}

func (f *FetchConfig) validate() error {
	if !f.Enabled {
		return nil
	}

	var errs []error

	if f.Timeout <= 0 {
		errs = append(errs, errors.New("fetch.timeout must be positive"))
	}
	if f.MaxBodyBytes < 1 {
		errs = append(errs, fmt.Errorf("fetch.max_body_bytes must be >= 1, got %d", f.MaxBodyBytes))
	}
	if f.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("fetch.retry.max_attempts must be >= 1, got %d", f.Retry.MaxAttempts))
	}
	if f.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("fetch.retry.multiplier must be positive, got %f", f.Retry.Multiplier))
	}
	if f.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("fetch.circuit_breaker.max_failures must be >= 1, got %d",
			f.CircuitBreaker.MaxFailures))
	}
	if f.CircuitBreaker.MaxHosts < 1 {
		errs = append(errs, fmt.Errorf("fetch.circuit_breaker.max_hosts must be >= 1, got %d",
			f.CircuitBreaker.MaxHosts))
	}
	if f.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("fetch.rate_limit.requests_per_second must not be negative, got %f",
			f.RateLimit.RequestsPerSecond))
	}
	if f.RateLimit.RequestsPerSecond > 0 && f.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("fetch.rate_limit.burst_size must be >= 1 when limiting, got %d",
			f.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
