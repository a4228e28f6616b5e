// Package model defines the entities persisted by the repository layer
// and serialized to API clients.
package model

// Employee is the personnel record managed by the API.
//
// JSON tags define the client-facing field names; db tags mirror the
// columns of the employees table.
type Employee struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
}
