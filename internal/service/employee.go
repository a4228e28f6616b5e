package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stafflane/employee-api/internal/model"
	"github.com/stafflane/employee-api/internal/repository"
)

// TxBeginner starts database transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// EmployeeStore is the repository surface the service delegates to.
// *repository.EmployeeRepository satisfies it.
type EmployeeStore interface {
	FindAll(ctx context.Context, db repository.DBTX) ([]model.Employee, error)
	FindByID(ctx context.Context, db repository.DBTX, id int64) (model.Employee, error)
	Save(ctx context.Context, db repository.DBTX, employee *model.Employee) error
	DeleteByID(ctx context.Context, db repository.DBTX, id int64) error
}

// EmployeeService is the transactional facade over the employee repository.
//
// Its contract is one-to-one with the repository's; the only behavior it
// adds is the transaction boundary around each call.
type EmployeeService struct {
	db   TxBeginner
	repo EmployeeStore
}

// NewEmployeeService constructs an EmployeeService with its dependencies
// passed explicitly.
func NewEmployeeService(db TxBeginner, repo EmployeeStore) *EmployeeService {
	return &EmployeeService{
		db:   db,
		repo: repo,
	}
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on any error.
func (s *EmployeeService) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	// Rollback after a successful Commit returns pgx.ErrTxClosed, which is
	// safe to discard.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// FindAll returns all employees.
func (s *EmployeeService) FindAll(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var err error
		employees, err = s.repo.FindAll(ctx, tx)
		return err
	})
	return employees, err
}

// FindByID returns the employee with the given id.
func (s *EmployeeService) FindByID(ctx context.Context, id int64) (model.Employee, error) {
	var employee model.Employee
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var err error
		employee, err = s.repo.FindByID(ctx, tx, id)
		return err
	})
	return employee, err
}

// Save persists the employee, assigning the store-generated id back onto
// it when the employee is new.
func (s *EmployeeService) Save(ctx context.Context, employee *model.Employee) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		return s.repo.Save(ctx, tx, employee)
	})
}

// DeleteByID removes the employee with the given id.
func (s *EmployeeService) DeleteByID(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		return s.repo.DeleteByID(ctx, tx, id)
	})
}
