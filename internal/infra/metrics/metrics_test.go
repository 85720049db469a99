package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "macrolog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRouteAndStatus(t *testing.T) {
	m := New()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/meal-plans/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrMealPlanNotFound
		}

		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	for _, id := range []string{"a", "b", "missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/meal-plans/"+id, nil))
	}
	m.RecordError("MEAL_PLAN_NOT_FOUND")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `macrolog_http_requests_total{method="GET",path="/api/v1/meal-plans/:id",status="200"} 2`)
	assert.Contains(t, body, `macrolog_http_requests_total{method="GET",path="/api/v1/meal-plans/:id",status="404"} 1`)
	assert.Contains(t, body, `macrolog_errors_total{code="MEAL_PLAN_NOT_FOUND"} 1`)
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
