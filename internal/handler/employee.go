package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/stafflane/employee-api/internal/errs"
	"github.com/stafflane/employee-api/internal/model"
	"github.com/stafflane/employee-api/internal/repository"
	"github.com/stafflane/employee-api/internal/server"
	"github.com/stafflane/employee-api/internal/validation"
)

// EmployeeService is the service surface the employee handler depends on.
// *service.EmployeeService satisfies it.
type EmployeeService interface {
	FindAll(ctx context.Context) ([]model.Employee, error)
	FindByID(ctx context.Context, id int64) (model.Employee, error)
	Save(ctx context.Context, employee *model.Employee) error
	DeleteByID(ctx context.Context, id int64) error
}

// EmployeeHandler serves the employee CRUD endpoints.
type EmployeeHandler struct {
	Handler
	employees EmployeeService
}

// NewEmployeeHandler constructs an EmployeeHandler.
func NewEmployeeHandler(s *server.Server, employees EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:   NewHandler(s),
		employees: employees,
	}
}

// ListEmployeesRequest is the (empty) payload for listing employees.
type ListEmployeesRequest struct{}

func (r *ListEmployeesRequest) Validate() error { return nil }

// GetEmployeeRequest identifies an employee by path parameter.
type GetEmployeeRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetEmployeeRequest) Validate() error { return validation.Struct(r) }

// CreateEmployeeRequest is the POST payload.
//
// It deliberately has no id field: whatever identifier a client supplies is
// discarded, so a POST always creates a new record.
type CreateEmployeeRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

func (r *CreateEmployeeRequest) Validate() error { return validation.Struct(r) }

// UpdateEmployeeRequest is the PUT payload; the id is required and
// preserved as-is.
type UpdateEmployeeRequest struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

func (r *UpdateEmployeeRequest) Validate() error { return validation.Struct(r) }

// DeleteEmployeeRequest identifies an employee by path parameter.
type DeleteEmployeeRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *DeleteEmployeeRequest) Validate() error { return validation.Struct(r) }

// List returns all employees.
func (h *EmployeeHandler) List(c echo.Context, _ *ListEmployeesRequest) ([]model.Employee, error) {
	return h.employees.FindAll(c.Request().Context())
}

// Get returns the employee with the given id, or a 404 naming the id.
func (h *EmployeeHandler) Get(c echo.Context, req *GetEmployeeRequest) (model.Employee, error) {
	employee, err := h.employees.FindByID(c.Request().Context(), req.ID)
	if err != nil {
		return model.Employee{}, h.translateNotFound(err, req.ID)
	}
	return employee, nil
}

// Create inserts a new employee and returns it with its assigned id.
func (h *EmployeeHandler) Create(c echo.Context, req *CreateEmployeeRequest) (model.Employee, error) {
	// ID is left zero so the store assigns a fresh identifier.
	employee := model.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	if err := h.employees.Save(c.Request().Context(), &employee); err != nil {
		return model.Employee{}, err
	}

	return employee, nil
}

// Update saves the employee with its client-supplied id preserved and
// returns the saved record. Updating an id that does not exist is a 404.
func (h *EmployeeHandler) Update(c echo.Context, req *UpdateEmployeeRequest) (model.Employee, error) {
	employee := model.Employee{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	if err := h.employees.Save(c.Request().Context(), &employee); err != nil {
		return model.Employee{}, h.translateNotFound(err, req.ID)
	}

	return employee, nil
}

// Delete removes the employee with the given id and returns a confirmation
// message.
//
// Existence is pre-checked here: deleting an absent id is a 404 for the
// client even though the repository treats it as a no-op.
func (h *EmployeeHandler) Delete(c echo.Context, req *DeleteEmployeeRequest) (string, error) {
	ctx := c.Request().Context()

	if _, err := h.employees.FindByID(ctx, req.ID); err != nil {
		return "", h.translateNotFound(err, req.ID)
	}

	if err := h.employees.DeleteByID(ctx, req.ID); err != nil {
		return "", err
	}

	return fmt.Sprintf("Deleted employee with id %d", req.ID), nil
}

// translateNotFound converts the repository's absence sentinel into a
// client-visible 404 that names the offending id. Every other error passes
// through unchanged for the global error handler to classify.
func (h *EmployeeHandler) translateNotFound(err error, id int64) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError(fmt.Sprintf("Employee with id %d not found", id), false, nil)
	}
	return err
}
