package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "macrolog/internal/domain/errors"
	mockService "macrolog/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runAuth(t *testing.T, authenticator *mockService.MockAuthenticator, header string) (uuid.UUID, bool, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var (
		seen   uuid.UUID
		called bool
	)
	err := NewAuthMiddleware(authenticator).Authenticate(func(c echo.Context) error {
		called = true
		seen, _ = GetUserID(c)

		return nil
	})(c)

	return seen, called, err
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("valid bearer", func(t *testing.T) {
		authenticator := mockService.NewMockAuthenticator(t)
		authenticator.EXPECT().Authenticate(mock.Anything, "token-1").Return(userID, nil).Once()

		seen, called, err := runAuth(t, authenticator, "Bearer token-1")

		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, userID, seen)
	})

	t.Run("case-insensitive scheme", func(t *testing.T) {
		authenticator := mockService.NewMockAuthenticator(t)
		authenticator.EXPECT().Authenticate(mock.Anything, "token-1").Return(userID, nil).Once()

		_, called, err := runAuth(t, authenticator, "bearer token-1")

		require.NoError(t, err)
		assert.True(t, called)
	})

	for name, header := range map[string]string{
		"missing header": "",
		"basic scheme":   "Basic dXNlcjpwYXNz",
		"empty token":    "Bearer   ",
	} {
		t.Run(name, func(t *testing.T) {
			authenticator := mockService.NewMockAuthenticator(t)

			_, called, err := runAuth(t, authenticator, header)

			assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
			assert.False(t, called)
		})
	}

	t.Run("unknown user", func(t *testing.T) {
		authenticator := mockService.NewMockAuthenticator(t)
		authenticator.EXPECT().Authenticate(mock.Anything, "stale").Return(uuid.Nil, domainerrors.ErrUnauthenticated).Once()

		_, called, err := runAuth(t, authenticator, "Bearer stale")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
		assert.False(t, called)
	})
}
