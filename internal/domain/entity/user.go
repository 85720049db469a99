// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. Every other record is owned by exactly one user.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`      // Login identifier, unique across users.
	PasswordHash string    `json:"-"`          // bcrypt hash of the password.
	Name         string    `json:"name"`       // Display name.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this user account was created.
}
