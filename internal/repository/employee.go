package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stafflane/employee-api/internal/middleware"
	"github.com/stafflane/employee-api/internal/model"
)

const (
	findAllEmployeesSQL = `SELECT id, first_name, last_name, email FROM employees ORDER BY id`

	findEmployeeByIDSQL = `SELECT id, first_name, last_name, email FROM employees WHERE id = $1`

	insertEmployeeSQL = `INSERT INTO employees (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id`

	updateEmployeeSQL = `UPDATE employees
		SET first_name = $2, last_name = $3, email = $4
		WHERE id = $1
		RETURNING id`

	deleteEmployeeByIDSQL = `DELETE FROM employees WHERE id = $1`
)

// EmployeeRepository issues the employee CRUD statements against the store.
//
// Every method takes a DBTX, so the same repository runs against the pool
// or inside a transaction opened by the service layer. Logging goes through
// the request-scoped logger carried in ctx, keeping correlation fields on
// every line.
type EmployeeRepository struct{}

// NewEmployeeRepository constructs an EmployeeRepository.
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

// FindAll returns every employee in the store, ordered by id.
// An empty store yields an empty slice, never an error.
func (r *EmployeeRepository) FindAll(ctx context.Context, db DBTX) ([]model.Employee, error) {
	rows, err := db.Query(ctx, findAllEmployeesSQL)
	if err != nil {
		return nil, fmt.Errorf("querying employees: %w", err)
	}
	defer rows.Close()

	employees := make([]model.Employee, 0)
	for rows.Next() {
		var employee model.Employee
		if err := rows.Scan(&employee.ID, &employee.FirstName, &employee.LastName, &employee.Email); err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading employees: %w", err)
	}

	return employees, nil
}

// FindByID returns the employee with the given id, or an error wrapping
// ErrNotFound when no record has that identifier.
func (r *EmployeeRepository) FindByID(ctx context.Context, db DBTX, id int64) (model.Employee, error) {
	var employee model.Employee

	err := db.QueryRow(ctx, findEmployeeByIDSQL, id).
		Scan(&employee.ID, &employee.FirstName, &employee.LastName, &employee.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Employee{}, fmt.Errorf("employee %d: %w", id, ErrNotFound)
		}
		return model.Employee{}, fmt.Errorf("querying employee %d: %w", id, err)
	}

	return employee, nil
}

// Save persists an employee.
//
// A zero ID inserts a new record and assigns the store-generated identifier
// back onto the employee. A nonzero ID updates the matching record; when no
// record has that id the call fails with ErrNotFound rather than silently
// doing nothing.
func (r *EmployeeRepository) Save(ctx context.Context, db DBTX, employee *model.Employee) error {
	if employee.ID == 0 {
		err := db.QueryRow(ctx, insertEmployeeSQL,
			employee.FirstName, employee.LastName, employee.Email).
			Scan(&employee.ID)
		if err != nil {
			return fmt.Errorf("inserting employee: %w", err)
		}
		middleware.LoggerFromContext(ctx).Debug().
			Int64("employee_id", employee.ID).
			Msg("inserted employee")
		return nil
	}

	err := db.QueryRow(ctx, updateEmployeeSQL,
		employee.ID, employee.FirstName, employee.LastName, employee.Email).
		Scan(&employee.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("employee %d: %w", employee.ID, ErrNotFound)
		}
		return fmt.Errorf("updating employee %d: %w", employee.ID, err)
	}

	return nil
}

// DeleteByID removes the employee with the given id.
//
// Deleting an absent record is a no-op at this layer; existence pre-checks
// belong to the caller.
func (r *EmployeeRepository) DeleteByID(ctx context.Context, db DBTX, id int64) error {
	tag, err := db.Exec(ctx, deleteEmployeeByIDSQL, id)
	if err != nil {
		return fmt.Errorf("deleting employee %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		middleware.LoggerFromContext(ctx).Debug().
			Int64("employee_id", id).
			Msg("delete matched no rows")
	}

	return nil
}
