package postgres

import (
	"context"
	"database/sql/driver"

	"macrolog/internal/domain/entity"
	"macrolog/internal/domain/repository"
	"macrolog/internal/infra/persistence/model"
	"macrolog/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// foodEntryRepository implements the domain.FoodEntryRepository interface using GORM.
type foodEntryRepository struct {
	q *query.Query
}

// NewFoodEntryRepository is the constructor for foodEntryRepository.
// It returns the repository as a domain.FoodEntryRepository interface.
func NewFoodEntryRepository(db *gorm.DB) repository.FoodEntryRepository {
	return &foodEntryRepository{
		q: query.Use(db),
	}
}

// Create persists a new food entry and copies the stored created_at back onto it.
func (repo *foodEntryRepository) Create(ctx context.Context, entry *entity.FoodEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	entryM := fromFoodEntryDomain(entry)
	if err := repo.q.FoodEntryModel.WithContext(ctx).Create(entryM); err != nil {
		return translateError(err, "failed to create food entry")
	}

	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindByID retrieves one of the user's food entries.
// An entry owned by another user is reported as repository.ErrFoodEntryNotFound.
func (repo *foodEntryRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.FoodEntry, error) {
	e := repo.q.FoodEntryModel
	entryM, err := e.WithContext(ctx).
		Where(e.ID.Eq(id), e.UserID.Eq(userID)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodEntryNotFound
		}

		return nil, translateError(err, "failed to find food entry")
	}

	return toFoodEntryDomain(entryM), nil
}

// ListByDailyLogs returns the entries of the given logs in creation order.
// An empty id list returns no entries without querying.
func (repo *foodEntryRepository) ListByDailyLogs(ctx context.Context, userID uuid.UUID, dailyLogIDs []uuid.UUID) ([]*entity.FoodEntry, error) {
	if len(dailyLogIDs) == 0 {
		return []*entity.FoodEntry{}, nil
	}

	ids := make([]driver.Valuer, 0, len(dailyLogIDs))
	for _, id := range dailyLogIDs {
		ids = append(ids, id)
	}

	e := repo.q.FoodEntryModel
	entryMs, err := e.WithContext(ctx).
		Where(e.UserID.Eq(userID), e.DailyLogID.In(ids...)).
		Order(e.CreatedAt, e.ID).
		Find()
	if err != nil {
		return nil, translateError(err, "failed to list food entries")
	}

	entries := make([]*entity.FoodEntry, 0, len(entryMs))
	for _, m := range entryMs {
		entries = append(entries, toFoodEntryDomain(m))
	}

	return entries, nil
}

// Delete removes one of the user's food entries.
// It returns repository.ErrFoodEntryNotFound when no row was deleted.
func (repo *foodEntryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	e := repo.q.FoodEntryModel
	info, err := e.WithContext(ctx).
		Where(e.ID.Eq(id), e.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return translateError(err, "failed to delete food entry")
	}
	if info.RowsAffected == 0 {
		return repository.ErrFoodEntryNotFound
	}

	return nil
}

func toFoodEntryDomain(m *model.FoodEntryModel) *entity.FoodEntry {
	return &entity.FoodEntry{
		ID:            m.ID,
		UserID:        m.UserID,
		DailyLogID:    m.DailyLogID,
		MealPlanID:    m.MealPlanID,
		FoodName:      m.FoodName,
		QuantityGrams: m.QuantityGrams,
		Nutrients: entity.Nutrients{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
		},
		CreatedAt: m.CreatedAt,
	}
}

func fromFoodEntryDomain(e *entity.FoodEntry) *model.FoodEntryModel {
	return &model.FoodEntryModel{
		ID:            e.ID,
		UserID:        e.UserID,
		DailyLogID:    e.DailyLogID,
		MealPlanID:    e.MealPlanID,
		FoodName:      e.FoodName,
		QuantityGrams: e.QuantityGrams,
		Calories:      e.Calories,
		Protein:       e.Protein,
		Carbs:         e.Carbs,
		Fat:           e.Fat,
		CreatedAt:     e.CreatedAt,
	}
}
