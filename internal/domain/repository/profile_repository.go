package repository

import (
	"context"
	"errors"

	"macrolog/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository stores the single profile of each user.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Upsert replaces the whole profile keyed by user id.
	Upsert(ctx context.Context, profile *entity.Profile) error
}
