// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request correlation, request logging, CORS, panic recovery, metrics
// observation, and the global error handler.
package middleware

import (
	"github.com/stafflane/employee-api/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server.
//
// Build once, reuse everywhere: shared dependencies (the *server.Server
// container) are wired in here instead of being scattered through routing
// setup code.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer

	// Metrics observes every handled request into the Prometheus collectors.
	Metrics *MetricsMiddleware
}

// NewMiddlewares constructs all middleware components using the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Metrics:         NewMetricsMiddleware(s),
	}
}
