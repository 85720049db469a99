package handler

import (
	"log/slog"
	"net/http"

	"macrolog/internal/delivery/api/response"
	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Auth actions accepted by POST /auth.
const (
	ActionSignUp = "signup"
	ActionSignIn = "signin"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves account creation, sign-in and whoami.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// AuthRequest is the body of POST /auth. Action selects which fields apply.
type AuthRequest struct {
	Action   string `json:"action" validate:"required,oneof=signup signin"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignUpRequest holds the fields required by the signup action.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// SignInRequest holds the fields required by the signin action.
type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// AuthResponse carries the account and the bearer credential for later requests.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token,omitempty"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

// Authenticate handles POST /auth for both the signup and signin actions.
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req AuthRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var (
		out *usecase.AuthOutput
		err error
	)

	switch req.Action {
	case ActionSignUp:
		signUp := SignUpRequest{Email: req.Email, Password: req.Password, Name: req.Name}
		if err := c.Validate(&signUp); err != nil {
			return errors.WithStack(err)
		}
		out, err = h.authUC.SignUp(c.Request().Context(), usecase.SignUpInput{
			Email:    signUp.Email,
			Password: signUp.Password,
			Name:     signUp.Name,
		})
	case ActionSignIn:
		signIn := SignInRequest{Email: req.Email, Password: req.Password}
		if err := c.Validate(&signIn); err != nil {
			return errors.WithStack(err)
		}
		out, err = h.authUC.SignIn(c.Request().Context(), usecase.SignInInput{
			Email:    signIn.Email,
			Password: signIn.Password,
		})
	default:
		return domainerrors.NewValidationError("action must be one of: signup, signin")
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, AuthResponse{
		User:  toUserResponse(out.User),
		Token: out.Token,
	})
}

// WhoAmI handles GET /auth.
func (h *AuthHandler) WhoAmI(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.WhoAmI(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, AuthResponse{User: toUserResponse(user)})
}
