package usecase

import (
	"context"

	"macrolog/internal/domain/entity"
	"macrolog/internal/domain/nutrition"

	"github.com/google/uuid"
)

// UpsertProfileInput carries the fields to write. Nil fields keep the stored
// value, or the signup default when no profile exists yet. A goal of zero
// clears that goal.
type UpsertProfileInput struct {
	Name          *string
	WeightKg      *float64
	HeightCm      *float64
	Age           *int
	Sex           *entity.Sex
	ActivityLevel *entity.ActivityLevel
	CalorieGoal   *float64
	ProteinGoal   *float64
	CarbsGoal     *float64
	FatGoal       *float64
}

// ProfileOutput is the profile plus its derived metabolic targets.
// Both are nil when the user has no profile.
type ProfileOutput struct {
	Profile *entity.Profile
	Targets *nutrition.Targets
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, input UpsertProfileInput) (*ProfileOutput, error)
}
