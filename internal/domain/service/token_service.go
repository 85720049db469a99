package service

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService issues and verifies bearer credentials for a user id.
type TokenService interface {
	// Issue returns a bearer credential for the user.
	Issue(userID uuid.UUID) (string, error)

	// Resolve returns the user id carried by the credential. It does not check
	// that the user still exists.
	Resolve(credential string) (uuid.UUID, error)
}

// Authenticator resolves a bearer credential to an existing user.
// Any failure is reported as domain ErrUnauthenticated.
type Authenticator interface {
	Authenticate(ctx context.Context, credential string) (uuid.UUID, error)
}
