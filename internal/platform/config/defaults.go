package config

const (
	defaultServerPort = 8080

	defaultMaxTextBytes = 1 << 20
	defaultMaxBatchSize = 100
	defaultBatchWorkers = 8

	defaultFetchMaxBodyBytes = 1 << 20

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
	defaultCircuitBreakerMaxHosts    = 1024

	defaultRateLimitRPS   = 10
	defaultRateLimitBurst = 20
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"server.request_timeout":      "8s",
		"server.health_check_timeout": "2s",

		"log.level":  "info",
		"log.format": "json",

		"extraction.max_text_bytes": defaultMaxTextBytes,
		"extraction.max_batch_size": defaultMaxBatchSize,
		"extraction.batch_workers":  defaultBatchWorkers,
		"extraction.health_doi":     "10.1000/182",

		"fetch.enabled":                         false,
		"fetch.timeout":                         "15s",
		"fetch.max_body_bytes":                  defaultFetchMaxBodyBytes,
		"fetch.user_agent":                      "identifiers/1.0 (+https://github.com/jsamuelsen11/identifiers)",
		"fetch.allow_private_networks":          false,
		"fetch.retry.max_attempts":              defaultRetryMaxAttempts,
		"fetch.retry.initial_interval":          "100ms",
		"fetch.retry.max_interval":              "5s",
		"fetch.retry.multiplier":                defaultRetryMultiplier,
		"fetch.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"fetch.circuit_breaker.timeout":         "30s",
		"fetch.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"fetch.circuit_breaker.max_hosts":       defaultCircuitBreakerMaxHosts,
		"fetch.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"fetch.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "identifiers",
	}
}
