package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmployeeJSONFieldNames(t *testing.T) {
	t.Parallel()

	employee := Employee{ID: 7, FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com"}

	data, err := json.Marshal(employee)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":7,"firstName":"Ada","lastName":"Lovelace","email":"ada@x.com"}`, string(data))
}
