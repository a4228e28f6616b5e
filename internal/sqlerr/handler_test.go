package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/employee-api/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	t.Parallel()

	original := errs.NewNotFoundError("already shaped", false, nil)
	require.Same(t, original, HandleError(original).(*errs.HTTPError))
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "employees",
		ConstraintName: "employees_email_key",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "EMPLOYEE_ALREADY_EXISTS", httpErr.Code)
	require.Equal(t, "A Employee with this Email already exists", httpErr.Message)
	require.True(t, httpErr.Override)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		Message:    "null value in column",
		TableName:  "employees",
		ColumnName: "first_name",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "EMPLOYEE_REQUIRED", httpErr.Code)
	require.Equal(t, "The First Name is required", httpErr.Message)
	require.Equal(t, []errs.FieldError{{Field: "first_name", Error: "is required"}}, httpErr.Errors)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23503",
		Message:    "violates foreign key constraint",
		TableName:  "assignments",
		ColumnName: "employee_id",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "ASSIGNMENT_NOT_FOUND", httpErr.Code)
	require.Equal(t, "The referenced Employee does not exist", httpErr.Message)
}

func TestHandleErrorUnknownPgErrorIsInternal(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Severity: "ERROR", Code: "57014", Message: "canceling statement"}

	httpErr := asHTTPError(t, HandleError(pgErr))
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
	// Internals must not leak to clients.
	require.NotContains(t, httpErr.Message, "canceling")
}

func TestHandleErrorNoRows(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("querying employee: %w", pgx.ErrNoRows)

	httpErr := asHTTPError(t, HandleError(wrapped))
	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleErrorUnknownIsInternal(t *testing.T) {
	t.Parallel()

	httpErr := asHTTPError(t, HandleError(errors.New("boom")))
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	t.Parallel()

	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})
	require.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("saving: %w", converted)))
	require.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestMapCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, UniqueViolation, MapCode("23505"))
	require.Equal(t, ForeignKeyViolation, MapCode("23503"))
	require.Equal(t, NotNullViolation, MapCode("23502"))
	require.Equal(t, CheckViolation, MapCode("23514"))
	require.Equal(t, ConnectionFailure, MapCode("08006"))
	require.Equal(t, Other, MapCode("57014"))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	t.Parallel()

	require.Equal(t, "email", extractColumnForUniqueViolation("employees_email_key"))
	require.Equal(t, "email", extractColumnForUniqueViolation("unique_employees_email"))
	require.Equal(t, "", extractColumnForUniqueViolation("pk_employees"))
}
