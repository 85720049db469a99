package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "macrolog/internal/delivery/context"
	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/nutrition"
	"macrolog/internal/domain/repository"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxAge = 130

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profileRepo repository.ProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile returns the profile and its targets, or an empty output when none exists.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &usecase.ProfileOutput{}, nil
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profileOutput(profile), nil
}

// UpsertProfile merges input onto the stored profile, or onto the signup
// defaults, and writes the whole row.
func (srv *profileService) UpsertProfile(ctx context.Context, userID uuid.UUID, input usecase.UpsertProfileInput) (*usecase.ProfileOutput, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(err, "failed to get profile")
		}
		profile = entity.NewDefaultProfile(userID, "")
	}

	if err := applyProfileInput(profile, input); err != nil {
		return nil, err
	}

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to upsert profile")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Profile saved", slog.String("userID", userID.String()))

	return profileOutput(profile), nil
}

func applyProfileInput(p *entity.Profile, in usecase.UpsertProfileInput) error {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.WeightKg != nil {
		if *in.WeightKg <= 0 {
			return domainerrors.NewValidationError("weight_kg must be greater than 0")
		}
		p.WeightKg = *in.WeightKg
	}
	if in.HeightCm != nil {
		if *in.HeightCm <= 0 {
			return domainerrors.NewValidationError("height_cm must be greater than 0")
		}
		p.HeightCm = *in.HeightCm
	}
	if in.Age != nil {
		if *in.Age <= 0 || *in.Age > maxAge {
			return domainerrors.NewValidationError("age must be between 1 and 130")
		}
		p.Age = *in.Age
	}
	if in.Sex != nil {
		if *in.Sex != entity.SexMale && *in.Sex != entity.SexFemale {
			return domainerrors.NewValidationError("sex must be male or female")
		}
		p.Sex = *in.Sex
	}
	if in.ActivityLevel != nil {
		if !nutrition.ValidActivityLevel(*in.ActivityLevel) {
			return domainerrors.NewValidationError("activity_level must be one of sedentary, light, moderate, active, very_active")
		}
		p.ActivityLevel = *in.ActivityLevel
	}

	goals := []struct {
		field string
		in    *float64
		out   **float64
	}{
		{"calorie_goal", in.CalorieGoal, &p.CalorieGoal},
		{"protein_goal", in.ProteinGoal, &p.ProteinGoal},
		{"carbs_goal", in.CarbsGoal, &p.CarbsGoal},
		{"fat_goal", in.FatGoal, &p.FatGoal},
	}
	for _, g := range goals {
		if g.in == nil {
			continue
		}
		if err := validateNonNegative(g.field, *g.in); err != nil {
			return err
		}
		if *g.in == 0 {
			*g.out = nil
			continue
		}
		v := *g.in
		*g.out = &v
	}

	return nil
}

func profileOutput(p *entity.Profile) *usecase.ProfileOutput {
	targets := nutrition.ProfileTargets(p)

	return &usecase.ProfileOutput{Profile: p, Targets: &targets}
}
