// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import (
	"time"

	"github.com/jsamuelsen11/identifiers/doi"
)

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Extraction ExtractionConfig `koanf:"extraction"`
	Fetch      FetchConfig      `koanf:"fetch"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// RequestTimeout is the per-request deadline enforced by the timeout
	// middleware. It should be shorter than WriteTimeout so clients receive
	// a 504 problem response instead of a dropped connection.
	RequestTimeout time.Duration `koanf:"request_timeout"`
	// HealthCheckTimeout bounds each readiness check.
	HealthCheckTimeout time.Duration `koanf:"health_check_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ExtractionConfig bounds the work a single request may ask of the recognizer.
type ExtractionConfig struct {
	// MaxTextBytes is the largest text accepted by validate and extract.
	MaxTextBytes int `koanf:"max_text_bytes"`
	// MaxBatchSize is the largest number of texts in one batch request.
	MaxBatchSize int `koanf:"max_batch_size"`
	// BatchWorkers caps concurrent extractions within one batch.
	BatchWorkers int `koanf:"batch_workers"`
	// HealthDOI is round-tripped through the recognizer by the readiness check.
	HealthDOI doi.DOI `koanf:"health_doi"`
}

// FetchConfig holds settings for retrieving remote documents to scan.
// Fetching is off unless Enabled is set.
type FetchConfig struct {
	Enabled      bool          `koanf:"enabled"`
	Timeout      time.Duration `koanf:"timeout"`
	MaxBodyBytes int64         `koanf:"max_body_bytes"`
	UserAgent    string        `koanf:"user_agent"`
	// AllowPrivateNetworks permits fetches that resolve to loopback,
	// private, or link-local addresses.
	AllowPrivateNetworks bool                 `koanf:"allow_private_networks"`
	Retry                RetryConfig          `koanf:"retry"`
	CircuitBreaker       CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit            RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds per-host circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
	// MaxHosts bounds how many hosts keep a breaker. The least recently
	// used host is forgotten first.
	MaxHosts      int           `koanf:"max_hosts"`
}

// RateLimitConfig caps outbound fetches across all hosts. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
