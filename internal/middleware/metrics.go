package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/stafflane/employee-api/internal/errs"
	"github.com/stafflane/employee-api/internal/server"
)

// MetricsMiddleware observes handled requests into the Prometheus
// collectors owned by the server container.
type MetricsMiddleware struct {
	server *server.Server
}

// NewMetricsMiddleware constructs the metrics middleware.
func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{server: s}
}

// Observe returns an echo middleware recording method, route template,
// final status, and latency for every request.
//
// When the handler returns an error the final status is decided later by
// the global error handler, so it is derived from the error type here, the
// same way the request logger does it.
func (m *MetricsMiddleware) Observe() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				switch {
				case errors.As(err, &httpErr):
					status = httpErr.Status
				case errors.As(err, &echoErr):
					status = echoErr.Code
				default:
					status = http.StatusInternalServerError
				}
			}

			m.server.Metrics.ObserveRequest(c.Request().Method, c.Path(), status, time.Since(start))

			return err
		}
	}
}
