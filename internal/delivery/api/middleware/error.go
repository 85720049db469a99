package middleware

import (
	"log/slog"
	"net/http"

	"macrolog/internal/delivery/api/response"
	deliverycontext "macrolog/internal/delivery/context"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error returned through the echo pipeline.
type ErrorMiddleware struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, m *metrics.Metrics) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:  logger,
		metrics: m,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// Server side failures keep their cause out of the response but not out of the log.
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		m.write(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		m.write(c, httpErr.Code, httpErrorCode(httpErr.Code), message)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}

func (m *ErrorMiddleware) write(c echo.Context, status int, code, message string) {
	if m.metrics != nil {
		m.metrics.RecordError(code)
	}

	if err := response.Error(c, status, code, message, nil); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthenticated.ErrorCode()
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "HTTP_ERROR"
	}
}
