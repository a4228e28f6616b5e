// Package sqlerr translates database driver errors.
//
// It parses cryptic SQLSTATE codes from the Postgres driver and converts
// them into user-friendly application errors (e.g. a unique violation
// becomes a "Bad Request" telling the client the record already exists).
package sqlerr

import "fmt"

// Code is a friendly category for the SQLSTATE codes we care about.
type Code int

const (
	// Other covers every SQLSTATE not mapped below.
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	ConnectionFailure
)

// MapCode maps a Postgres SQLSTATE code to a sqlerr.Code.
//
// Class 23 holds integrity constraint violations, class 08 connection
// exceptions. Anything else is Other.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}
	if len(sqlstate) >= 2 && sqlstate[:2] == "08" {
		return ConnectionFailure
	}
	return Other
}

// Severity mirrors the severity field of a Postgres error.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// MapSeverity maps the severity string reported by Postgres to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	}
	return SeverityUnknown
}

// Error is the normalized form of a Postgres server error.
//
// It keeps the original SQLSTATE (DatabaseCode) plus the schema metadata
// Postgres reports, so callers can switch on Code and still build precise
// messages from table/column/constraint names.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

// Error satisfies the built-in error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("sqlerr %s: %s", e.DatabaseCode, e.Message)
}

// Unwrap exposes the original driver error for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.driverErr
}
