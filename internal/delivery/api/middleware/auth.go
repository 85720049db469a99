package middleware

import (
	"strings"

	deliverycontext "macrolog/internal/delivery/context"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer credential before any handler touches data.
type AuthMiddleware struct {
	authenticator service.Authenticator
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authenticator service.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

// Authenticate rejects the request with 401 unless the Authorization header
// carries a credential for an existing user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthenticated
		}

		credential := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if credential == "" {
			return domainerrors.ErrUnauthenticated
		}

		userID, err := m.authenticator.Authenticate(c.Request().Context(), credential)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// GetUserID returns the user set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}
