package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for storing the authenticated user id.
	KeyUserID ContextKey = "user_id"
)

// SetUserID stores the authenticated user in both echo.Context and the request
// context, and tags the request logger with it.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)

	ctx := context.WithValue(c.Request().Context(), KeyUserID, userID)
	c.SetRequest(c.Request().WithContext(withUserLogger(ctx, userID)))
}

// GetUserID returns the authenticated user set by the auth middleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetUserIDFromContext extracts the authenticated user from standard context.Context.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(KeyUserID).(uuid.UUID)

	return userID, ok
}
