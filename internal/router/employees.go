package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stafflane/employee-api/internal/handler"
)

// registerEmployeeRoutes maps the employee CRUD surface onto the /api group.
func registerEmployeeRoutes(g *echo.Group, h *handler.Handlers) {
	g.GET("/employees", handler.Handle(h.Employee.List, http.StatusOK))
	g.GET("/employees/:id", handler.Handle(h.Employee.Get, http.StatusOK))
	g.POST("/employees", handler.Handle(h.Employee.Create, http.StatusCreated))
	g.PUT("/employees", handler.Handle(h.Employee.Update, http.StatusOK))
	g.DELETE("/employees/:id", handler.Handle(h.Employee.Delete, http.StatusOK))
}
