// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or update
// data, abstracting SQL logic away from the service layer.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound reports that no record matches the requested identifier.
//
// Repositories return it wrapped with context (entity and id); callers
// check it with errors.Is. Translating it into a client-visible 404 is the
// handler layer's job.
var ErrNotFound = errors.New("record not found")

// DBTX is the query surface repositories run against.
//
// Both *pgxpool.Pool and pgx.Tx satisfy it, so the service layer decides
// whether a repository call runs inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
