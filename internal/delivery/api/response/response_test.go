package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "macrolog/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func TestSuccess_Envelope(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"n": 1}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"n":1},"meta":{"request_id":"req-42"}}`, rec.Body.String())
}

func TestError_FlatEnvelope(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "date is required", []string{"date"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"error":"date is required","code":"VALIDATION_FAILED","details":["date"],"meta":{"request_id":"req-42"}}`,
		rec.Body.String())
}

func TestError_DropsDetailsOnServerErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "down", "dsn=secret"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "details")
	assert.Equal(t, "STORE_UNAVAILABLE", body["code"])
}

func TestMethodNotAllowed(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, MethodNotAllowed(c))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"METHOD_NOT_ALLOWED"`)
}
