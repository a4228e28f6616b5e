// Package handler is the first entry point for business logic after the
// router.
//
// It parses requests, handles input validation using the validation
// package, and calls the appropriate service layer. It acts as the
// interface between the HTTP request and the core business logic.
package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stafflane/employee-api/internal/middleware"
	"github.com/stafflane/employee-api/internal/server"
	"github.com/stafflane/employee-api/internal/validation"
)

// Handler is the base handler type that holds shared application
// dependencies.
//
// Concrete handlers embed it so they can reach shared resources
// (config, logger, db) via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// Returning the struct by value is fine: it only contains a pointer field,
// so copies still point at the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// ValidatablePtr constrains PReq to be a pointer to Req that knows how to
// validate itself. The pointer form is required so echo's binder can
// populate the request struct.
type ValidatablePtr[Req any] interface {
	*Req
	validation.Validatable
}

// Handle wraps a typed endpoint function into an echo.HandlerFunc.
//
// It is the shared execution pipeline for all endpoints and centralizes:
//   - per-request allocation of the request payload
//   - request binding + validation
//   - structured logging with the request-scoped logger
//   - JSON response writing with the given success status
//
// Usage:
//
//	e.GET("/employees/:id", handler.Handle(h.Employee.Get, http.StatusOK))
func Handle[Req any, PReq ValidatablePtr[Req], Res any](
	fn func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		logger := middleware.GetLogger(c).With().
			Str("operation", "handler").
			Str("route", c.Path()).
			Logger()

		// A fresh request value per call: the bound payload must never be
		// shared between concurrent requests.
		req := PReq(new(Req))

		if err := validation.BindAndValidate(c, req); err != nil {
			logger.Warn().Err(err).Msg("request validation failed")
			return err
		}

		result, err := fn(c, req)
		if err != nil {
			logger.Error().
				Err(err).
				Dur("duration", time.Since(start)).
				Msg("handler execution failed")
			return err
		}

		logger.Debug().
			Dur("duration", time.Since(start)).
			Msg("request completed")

		return c.JSON(status, result)
	}
}
