package repository

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/employee-api/internal/middleware"
	"github.com/stafflane/employee-api/internal/model"
)

// fakeRow satisfies pgx.Row with a programmable Scan.
type fakeRow struct {
	scanFn func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scanFn(dest...) }

// fakeRows satisfies pgx.Rows for the FindAll query. Only the methods the
// repository touches are implemented; the rest panic via the nil embed.
type fakeRows struct {
	pgx.Rows
	employees []model.Employee
	idx       int
}

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx <= len(r.employees)
}

func (r *fakeRows) Scan(dest ...any) error {
	employee := r.employees[r.idx-1]
	*dest[0].(*int64) = employee.ID
	*dest[1].(*string) = employee.FirstName
	*dest[2].(*string) = employee.LastName
	*dest[3].(*string) = employee.Email
	return nil
}

func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Close()     {}

// fakeDB satisfies DBTX and records the last statement issued.
type fakeDB struct {
	lastSQL  string
	lastArgs []any

	row      pgx.Row
	rows     pgx.Rows
	queryErr error
	execTag  pgconn.CommandTag
	execErr  error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.execTag, f.execErr
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.rows, f.queryErr
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	return f.row
}

func newTestRepository() *EmployeeRepository {
	return NewEmployeeRepository()
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	want := []model.Employee{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com"},
		{ID: 2, FirstName: "Alan", LastName: "Turing", Email: "alan@x.com"},
	}
	db := &fakeDB{rows: &fakeRows{employees: want}}

	got, err := newTestRepository().FindAll(context.Background(), db)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, findAllEmployeesSQL, db.lastSQL)
}

func TestFindAllEmptyStore(t *testing.T) {
	t.Parallel()

	db := &fakeDB{rows: &fakeRows{}}

	got, err := newTestRepository().FindAll(context.Background(), db)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFindByIDAbsent(t *testing.T) {
	t.Parallel()

	db := &fakeDB{row: fakeRow{scanFn: func(...any) error { return pgx.ErrNoRows }}}

	_, err := newTestRepository().FindByID(context.Background(), db, 7)
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "7")
	require.Equal(t, []any{int64(7)}, db.lastArgs)
}

func TestSaveInsertsWhenIDZero(t *testing.T) {
	t.Parallel()

	db := &fakeDB{row: fakeRow{scanFn: func(dest ...any) error {
		*dest[0].(*int64) = 42
		return nil
	}}}

	employee := model.Employee{FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com"}
	require.NoError(t, newTestRepository().Save(context.Background(), db, &employee))

	require.Equal(t, int64(42), employee.ID)
	require.Equal(t, insertEmployeeSQL, db.lastSQL)
	require.Equal(t, []any{"Ada", "Lovelace", "ada@x.com"}, db.lastArgs)
}

func TestSaveUpdatesWhenIDSet(t *testing.T) {
	t.Parallel()

	db := &fakeDB{row: fakeRow{scanFn: func(dest ...any) error {
		*dest[0].(*int64) = 5
		return nil
	}}}

	employee := model.Employee{ID: 5, FirstName: "Ada", LastName: "Lovelace", Email: "new@x.com"}
	require.NoError(t, newTestRepository().Save(context.Background(), db, &employee))

	require.Equal(t, int64(5), employee.ID)
	require.Equal(t, updateEmployeeSQL, db.lastSQL)
	require.Equal(t, []any{int64(5), "Ada", "Lovelace", "new@x.com"}, db.lastArgs)
}

func TestSaveUpdateOfMissingIDIsNotFound(t *testing.T) {
	t.Parallel()

	db := &fakeDB{row: fakeRow{scanFn: func(...any) error { return pgx.ErrNoRows }}}

	employee := model.Employee{ID: 99, FirstName: "Ghost", LastName: "Record", Email: "ghost@x.com"}
	err := newTestRepository().Save(context.Background(), db, &employee)
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "99")
}

func TestDeleteByIDAbsentIsNoOp(t *testing.T) {
	t.Parallel()

	db := &fakeDB{execTag: pgconn.NewCommandTag("DELETE 0")}

	require.NoError(t, newTestRepository().DeleteByID(context.Background(), db, 7))
	require.Equal(t, deleteEmployeeByIDSQL, db.lastSQL)
}

// Both write paths log through the request-scoped logger carried in ctx,
// so lines keep their correlation fields.
func TestWritePathsLogThroughRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := middleware.WithLogger(context.Background(), &logger)

	db := &fakeDB{row: fakeRow{scanFn: func(dest ...any) error {
		*dest[0].(*int64) = 1
		return nil
	}}}
	employee := model.Employee{FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com"}
	require.NoError(t, newTestRepository().Save(ctx, db, &employee))
	require.Contains(t, buf.String(), "inserted employee")

	db = &fakeDB{execTag: pgconn.NewCommandTag("DELETE 0")}
	require.NoError(t, newTestRepository().DeleteByID(ctx, db, 5))
	require.Contains(t, buf.String(), "delete matched no rows")
}

func TestDeleteByIDPropagatesStoreError(t *testing.T) {
	t.Parallel()

	db := &fakeDB{execErr: errors.New("connection refused")}

	err := newTestRepository().DeleteByID(context.Background(), db, 7)
	require.Error(t, err)
	require.Contains(t, err.Error(), "connection refused")
}
