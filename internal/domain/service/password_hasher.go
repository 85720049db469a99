// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"fmt"

	domainerrors "macrolog/internal/domain/errors"
)

const (
	// MinPasswordLength is the shortest password accepted at sign-up.
	MinPasswordLength = 6

	// MaxPasswordBytes is bcrypt's input limit. Longer passwords are refused
	// rather than silently truncated.
	MaxPasswordBytes = 72
)

// PasswordHasher hashes account passwords at sign-up and verifies them at sign-in.
// Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a salted hash of password suitable for the users.password_hash column.
	Hash(password string) (string, error)

	// Check reports whether password matches a hash produced by Hash.
	Check(password, hash string) bool
}

// ValidatePassword enforces the sign-up password policy.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return domainerrors.NewValidationError(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if len(password) > MaxPasswordBytes {
		return domainerrors.NewValidationError(fmt.Sprintf("password must be at most %d bytes", MaxPasswordBytes))
	}

	return nil
}
