package handler

import (
	"log/slog"
	"net/http"
	"time"

	"macrolog/internal/delivery/api/response"
	"macrolog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ExportHandlerParams holds dependencies for ExportHandler, injected by Fx.
type ExportHandlerParams struct {
	fx.In

	ExportUC usecase.ExportUsecase
	Calendar *Calendar
	Logger   *slog.Logger
}

// ExportHandler writes data exports to the archive.
type ExportHandler struct {
	exportUC usecase.ExportUsecase
	calendar *Calendar
	logger   *slog.Logger
}

// NewExportHandler is the constructor for ExportHandler
func NewExportHandler(params ExportHandlerParams) *ExportHandler {
	return &ExportHandler{
		exportUC: params.ExportUC,
		calendar: params.Calendar,
		logger:   params.Logger,
	}
}

// ExportRequest is the optional body of POST /exports.
type ExportRequest struct {
	Days int `json:"days" validate:"gte=0"`
}

// ExportResponse locates the written archive object.
type ExportResponse struct {
	Key         string    `json:"key"`
	Size        int64     `json:"size"`
	GeneratedAt time.Time `json:"generated_at"`
}

// CreateExport handles POST /exports.
func (h *ExportHandler) CreateExport(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	// An empty body exports the default history window.
	var req ExportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	today, err := h.calendar.Today(c)
	if err != nil {
		return err
	}

	out, err := h.exportUC.Export(c.Request().Context(), userID, usecase.ExportInput{Today: today, Days: req.Days})
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Export written", slog.String("user_id", userID.String()), slog.String("key", out.Key))

	return response.Success(c, http.StatusCreated, ExportResponse{
		Key:         out.Key,
		Size:        out.Size,
		GeneratedAt: out.GeneratedAt,
	})
}
