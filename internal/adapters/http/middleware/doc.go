// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The router installs them in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler.
package middleware
