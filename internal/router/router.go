// Package router initializes the HTTP router (using echo).
//
// It registers the middlewares and defines the API route groups, mapping
// specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/stafflane/employee-api/internal/handler"
	"github.com/stafflane/employee-api/internal/middleware"
	"github.com/stafflane/employee-api/internal/server"
)

// New builds the echo instance with the full middleware stack and all
// routes registered.
//
// Middleware order matters: recovery first so later middleware is covered,
// request ID before the context enhancer (the enhancer reads it), and the
// request logger after the enhancer so it can use the enriched logger.
func New(s *server.Server, mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(mw.Global.Recover())
	e.Use(mw.Global.Secure())
	e.Use(mw.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.Metrics.Observe())

	registerSystemRoutes(e, s, h)

	api := e.Group("/api")
	registerEmployeeRoutes(api, h)

	return e
}
