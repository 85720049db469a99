package auth

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"testing"
	"time"

	"macrolog/config"
	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/repository"
	mockRepo "macrolog/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jwtConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test_access_secret_key_very_long_for_testing"},
		Auth:      &config.AuthConfig{Scheme: SchemeJWT, TokenTTL: time.Hour},
	}
}

func TestJWTService_IssueAndResolve(t *testing.T) {
	svc, err := NewJWTService(jwtConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	resolved, err := svc.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, userID, resolved)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc, err := NewJWTService(jwtConfig())
	require.NoError(t, err)

	other := jwtConfig()
	other.SecretKey.Access = "a_different_secret_for_the_other_signer"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	foreign, err := otherSvc.Issue(uuid.New())
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":        "not-a-token",
		"wrong secret":   foreign,
		"encoded scheme": base64.StdEncoding.EncodeToString([]byte(uuid.NewString())),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Resolve(token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(jwtConfig())
	require.NoError(t, err)

	issuedAt := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	svc.(*jwtService).now = func() time.Time { return issuedAt }
	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	svc.(*jwtService).now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = svc.Resolve(token)
	assert.Error(t, err)
}

func TestEncodedTokenService(t *testing.T) {
	svc := NewEncodedTokenService()
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte(userID.String())), token)

	resolved, err := svc.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, userID, resolved)

	unpadded := base64.RawStdEncoding.EncodeToString([]byte(userID.String()))
	resolved, err = svc.Resolve(unpadded)
	require.NoError(t, err)
	assert.Equal(t, userID, resolved)

	for name, token := range map[string]string{
		"empty":      "  ",
		"not base64":  "%%%",
		"not a uuid":  base64.StdEncoding.EncodeToString([]byte("alice")),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Resolve(token)
			assert.Error(t, err)
		})
	}
}

func TestNewTokenService(t *testing.T) {
	svc, err := NewTokenService(&config.Config{})
	require.NoError(t, err)
	assert.IsType(t, encodedTokenService{}, svc)

	svc, err = NewTokenService(jwtConfig())
	require.NoError(t, err)
	assert.IsType(t, &jwtService{}, svc)

	_, err = NewTokenService(&config.Config{Auth: &config.AuthConfig{Scheme: "basic"}})
	assert.Error(t, err)
}

func TestAuthenticator_Authenticate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	token, err := NewEncodedTokenService().Issue(userID)
	require.NoError(t, err)

	newAuthenticator := func(t *testing.T) (*mockRepo.MockUserRepository, *authenticator) {
		users := mockRepo.NewMockUserRepository(t)

		return users, NewAuthenticator(AuthenticatorParams{
			Tokens: NewEncodedTokenService(),
			Users:  users,
			Logger: discardLogger(),
		}).(*authenticator)
	}

	t.Run("known user", func(t *testing.T) {
		users, a := newAuthenticator(t)
		users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

		got, err := a.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("malformed credential never reaches the store", func(t *testing.T) {
		_, a := newAuthenticator(t)

		_, err := a.Authenticate(ctx, "not-base64!")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("unknown user", func(t *testing.T) {
		users, a := newAuthenticator(t)
		users.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := a.Authenticate(ctx, token)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("store failure keeps its error", func(t *testing.T) {
		users, a := newAuthenticator(t)
		storeErr := domainerrors.NewStoreUnavailableError(errors.New("connection refused"))
		users.EXPECT().FindByID(ctx, userID).Return(nil, storeErr)

		_, err := a.Authenticate(ctx, token)
		assert.Equal(t, storeErr, err)
	})
}
