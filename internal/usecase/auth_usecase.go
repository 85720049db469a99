// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"macrolog/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the user and the bearer credential to use on later requests.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines account and identity operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SignUp creates the user and a default profile in one transaction.
	SignUp(ctx context.Context, input SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input SignInInput) (*AuthOutput, error)
	WhoAmI(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
