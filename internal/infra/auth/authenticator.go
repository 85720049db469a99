package auth

import (
	"context"
	"log/slog"

	"macrolog/config"
	deliverycontext "macrolog/internal/delivery/context"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/repository"
	"macrolog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Scheme names accepted in auth.scheme.
const (
	SchemeEncoded = "encoded"
	SchemeJWT     = "jwt"
)

// NewTokenService selects the TokenService for the configured scheme.
func NewTokenService(cfg *config.Config) (service.TokenService, error) {
	scheme := SchemeEncoded
	if cfg.Auth != nil && cfg.Auth.Scheme != "" {
		scheme = cfg.Auth.Scheme
	}

	switch scheme {
	case SchemeEncoded:
		return NewEncodedTokenService(), nil
	case SchemeJWT:
		return NewJWTService(cfg)
	default:
		return nil, errors.Errorf("unknown auth scheme: %s", scheme)
	}
}

// AuthenticatorParams holds dependencies for the authenticator, injected by Fx.
type AuthenticatorParams struct {
	fx.In

	Tokens service.TokenService
	Users  repository.UserRepository
	Logger *slog.Logger
}

type authenticator struct {
	tokens service.TokenService
	users  repository.UserRepository
	logger *slog.Logger
}

// NewAuthenticator returns an Authenticator that resolves the credential and
// checks the user still exists.
func NewAuthenticator(params AuthenticatorParams) service.Authenticator {
	return &authenticator{
		tokens: params.Tokens,
		users:  params.Users,
		logger: params.Logger,
	}
}

func (a *authenticator) Authenticate(ctx context.Context, credential string) (uuid.UUID, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, a.logger)

	userID, err := a.tokens.Resolve(credential)
	if err != nil {
		logger.Debug("Rejected bearer credential", slog.Any("error", err))

		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	if _, err := a.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return uuid.Nil, domainerrors.ErrUnauthenticated
		}

		// Store failures keep their own status (503/500).
		return uuid.Nil, err
	}

	return userID, nil
}
