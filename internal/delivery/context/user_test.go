package context

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestUserID_RoundTrip(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	userID := uuid.New()
	SetUserID(c, userID)

	got, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	fromCtx, ok := GetUserIDFromContext(c.Request().Context())
	assert.True(t, ok)
	assert.Equal(t, userID, fromCtx)
}

func TestGetRequestID_GeneratesWhenMissing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestGetRequestID_FallsBackToRequestContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRequestID(req.Context(), "req-ctx"))
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "req-ctx", GetRequestID(c))
}

func TestSetUserID_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil)).With(slog.String("requestID", "req-1"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithLogger(req.Context(), logger))
	c := e.NewContext(req, httptest.NewRecorder())

	userID := uuid.New()
	SetUserID(c, userID)

	GetLoggerOrDefault(c.Request().Context(), slog.Default()).Info("Food entry added")

	assert.Contains(t, buf.String(), `"requestID":"req-1"`)
	assert.Contains(t, buf.String(), `"userID":"`+userID.String()+`"`)
}

func TestSetUserID_WithoutRequestLogger(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	SetUserID(c, uuid.New())

	assert.Nil(t, GetLogger(c.Request().Context()))
}
