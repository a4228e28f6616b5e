package handler

import (
	"github.com/stafflane/employee-api/internal/server"
	"github.com/stafflane/employee-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health   *HealthHandler   // Health serves the service health endpoint.
	Employee *EmployeeHandler // Employee serves the employee CRUD endpoints.
}

// NewHandlers constructs the handler container from the application
// container and the service layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Employee: NewEmployeeHandler(s, services.Employee),
	}
}
