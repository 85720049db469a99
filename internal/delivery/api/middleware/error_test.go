package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Meta  struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func renderError(t *testing.T, err error) (int, errorBody) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/custom-foods", nil), rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.New())
	m.HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "validation",
			err:     errors.WithStack(domainerrors.NewValidationError("calories is required")),
			status:  http.StatusBadRequest,
			code:    "VALIDATION_FAILED",
			message: "calories is required",
		},
		{
			name:    "not found",
			err:     errors.WithStack(domainerrors.ErrCustomFoodNotFound),
			status:  http.StatusNotFound,
			code:    "CUSTOM_FOOD_NOT_FOUND",
			message: "Custom food not found",
		},
		{
			name:    "conflict",
			err:     domainerrors.ErrCustomFoodConflict,
			status:  http.StatusConflict,
			code:    "CUSTOM_FOOD_CONFLICT",
			message: "A custom food with this name already exists",
		},
		{
			name:    "store unavailable",
			err:     domainerrors.NewStoreUnavailableError(errors.New("dial tcp 10.0.0.1:5432: connect: connection refused")),
			status:  http.StatusServiceUnavailable,
			code:    "STORE_UNAVAILABLE",
			message: "Database is unreachable, check the postgres configuration",
		},
		{
			name:    "database error is opaque",
			err:     domainerrors.NewDatabaseExecuteError(errors.New("syntax error at or near"), "find"),
			status:  http.StatusInternalServerError,
			code:    "DATABASE_EXECUTE_FAILED",
			message: "Internal server error",
		},
		{
			name:    "method not allowed",
			err:     echo.ErrMethodNotAllowed,
			status:  http.StatusMethodNotAllowed,
			code:    "METHOD_NOT_ALLOWED",
			message: "Method Not Allowed",
		},
		{
			name:    "unknown",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_ERROR",
			message: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := renderError(t, tt.err)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Error)
			assert.NotEmpty(t, body.Meta.RequestID)
			assert.NotContains(t, body.Error, "10.0.0.1")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	m.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
