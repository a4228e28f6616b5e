// Package service contains the business logic.
//
// It sits between the handler and repository layers. Each service call
// owns exactly one database transaction: it begins the transaction,
// delegates to the repository, and commits on success or rolls back on
// any error.
package service

import (
	"github.com/stafflane/employee-api/internal/repository"
	"github.com/stafflane/employee-api/internal/server"
)

// Services is a container that groups all service instances.
type Services struct {
	Employee *EmployeeService
}

// NewServices constructs the service container, wiring repositories and
// the database pool into each service.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Employee: NewEmployeeService(s.DB.Pool, repos.Employee),
	}
}
