package postgres

import (
	"context"
	"time"

	"macrolog/internal/domain/entity"
	"macrolog/internal/domain/repository"
	"macrolog/internal/infra/persistence/model"
	"macrolog/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	q *query.Query
}

// NewProfileRepository is the constructor for profileRepository.
// It returns the repository as a domain.ProfileRepository interface.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		q: query.Use(db),
	}
}

// FindByUserID retrieves the profile owned by the user.
// It returns repository.ErrProfileNotFound when the user has none.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	p := repo.q.ProfileModel
	profileM, err := p.WithContext(ctx).
		Where(p.UserID.Eq(userID)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, translateError(err, "failed to find profile")
	}

	return toProfileDomain(profileM), nil
}

// Upsert inserts the profile or overwrites every column except created_at.
// The user_id primary key is the conflict target, so concurrent upserts of
// the same user converge on one row.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	profileM := fromProfileDomain(profile)

	err := repo.q.ProfileModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "weight_kg", "height_cm", "age", "sex", "activity_level",
				"calorie_goal", "protein_goal", "carbs_goal", "fat_goal", "updated_at",
			}),
		}).
		Create(profileM)
	if err != nil {
		return translateError(err, "failed to upsert profile")
	}

	return nil
}

func toProfileDomain(m *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		UserID:        m.UserID,
		Name:          m.Name,
		WeightKg:      m.WeightKg,
		HeightCm:      m.HeightCm,
		Age:           m.Age,
		Sex:           entity.Sex(m.Sex),
		ActivityLevel: entity.ActivityLevel(m.ActivityLevel),
		CalorieGoal:   m.CalorieGoal,
		ProteinGoal:   m.ProteinGoal,
		CarbsGoal:     m.CarbsGoal,
		FatGoal:       m.FatGoal,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromProfileDomain(p *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		UserID:        p.UserID,
		Name:          p.Name,
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		Age:           p.Age,
		Sex:           string(p.Sex),
		ActivityLevel: string(p.ActivityLevel),
		CalorieGoal:   p.CalorieGoal,
		ProteinGoal:   p.ProteinGoal,
		CarbsGoal:     p.CarbsGoal,
		FatGoal:       p.FatGoal,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
