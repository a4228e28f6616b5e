package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/employee-api/internal/errs"
)

type signupRequest struct {
	Name  string `json:"name" validate:"required,max=10"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"gt=0"`
}

func (r *signupRequest) Validate() error { return Struct(r) }

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBindAndValidateOK(t *testing.T) {
	t.Parallel()

	c := newJSONContext(t, `{"name":"Ada","email":"ada@x.com","age":36}`)

	payload := &signupRequest{}
	require.NoError(t, BindAndValidate(c, payload))
	require.Equal(t, "Ada", payload.Name)
	require.Equal(t, "ada@x.com", payload.Email)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	t.Parallel()

	c := newJSONContext(t, `{"name":`)

	err := BindAndValidate(c, &signupRequest{})
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	t.Parallel()

	c := newJSONContext(t, `{"name":"","email":"not-an-email","age":-1}`)

	err := BindAndValidate(c, &signupRequest{})
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "Validation failed", httpErr.Message)

	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}
	require.Equal(t, "is required", byField["name"])
	require.Equal(t, "must be a valid email address", byField["email"])
	require.Equal(t, "must be greater than 0", byField["age"])
}

func TestBindAndValidateMaxLength(t *testing.T) {
	t.Parallel()

	c := newJSONContext(t, `{"name":"averyverylongname","email":"ada@x.com","age":1}`)

	err := BindAndValidate(c, &signupRequest{})
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Len(t, httpErr.Errors, 1)
	require.Equal(t, "name", httpErr.Errors[0].Field)
	require.Equal(t, "must not exceed 10 characters", httpErr.Errors[0].Error)
}
