package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	deliverycontext "macrolog/internal/delivery/context"
	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/repository"
	"macrolog/internal/domain/service"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the account and its default profile atomically.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.NewValidationError("email is not a valid address")
	}
	if err := service.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		if err := repoFactory.ProfileRepo().Upsert(ctx, entity.NewDefaultProfile(user.ID, name)); err != nil {
			return errors.Wrap(err, "failed to create default profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign up")
	}

	srv.log(ctx).Info("User signed up", slog.String("userID", user.ID.String()))

	return srv.issue(user)
}

// SignIn verifies the password and issues a credential.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(user)
}

// WhoAmI returns the authenticated user.
func (srv *authService) WhoAmI(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	return user, nil
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
