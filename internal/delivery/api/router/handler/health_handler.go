package handler

import (
	"context"
	"net/http"
	"time"

	"macrolog/internal/delivery/api/response"
	domainerrors "macrolog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB *gorm.DB
}

// HealthHandler reports liveness and store reachability.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{db: params.DB}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Check handles GET /health. An unreachable store yields 503.
func (h *HealthHandler) Check(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return domainerrors.NewStoreUnavailableError(err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return domainerrors.NewStoreUnavailableError(err)
	}

	return response.Success(c, http.StatusOK, HealthResponse{Status: "ok", Database: "up"})
}
