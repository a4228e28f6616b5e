package router

import (
	"github.com/labstack/echo/v4"

	"github.com/stafflane/employee-api/internal/handler"
	"github.com/stafflane/employee-api/internal/server"
)

// registerSystemRoutes registers endpoints that are not part of the
// business API: health status and the Prometheus scrape endpoint.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	// Health status endpoint (used by load balancers and monitors).
	r.GET("/status", h.Health.CheckHealth)

	// Prometheus metrics scrape endpoint.
	r.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
}
