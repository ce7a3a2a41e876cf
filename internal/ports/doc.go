// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Health ports let infrastructure and application components report readiness.
package ports
