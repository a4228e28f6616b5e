package repository

import (
	"github.com/stafflane/employee-api/internal/server"
)

// Repositories is a container for all repository instances.
//
// It establishes the dependency injection shape: repositories are
// constructed once here and handed to the service layer.
type Repositories struct {
	Employee *EmployeeRepository
}

// NewRepositories constructs the repository container. It takes the
// application container so repositories that need shared dependencies can
// receive them here.
func NewRepositories(_ *server.Server) *Repositories {
	return &Repositories{
		Employee: NewEmployeeRepository(),
	}
}
