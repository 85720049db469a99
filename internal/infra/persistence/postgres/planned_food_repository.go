package postgres

import (
	"context"

	"macrolog/internal/domain/entity"
	"macrolog/internal/domain/repository"
	"macrolog/internal/infra/persistence/model"
	"macrolog/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// plannedFoodRepository implements the domain.PlannedFoodRepository interface using GORM.
type plannedFoodRepository struct {
	q *query.Query
}

// NewPlannedFoodRepository is the constructor for plannedFoodRepository.
// It returns the repository as a domain.PlannedFoodRepository interface.
func NewPlannedFoodRepository(db *gorm.DB) repository.PlannedFoodRepository {
	return &plannedFoodRepository{
		q: query.Use(db),
	}
}

// ListByMealPlan returns the planned foods of one meal plan in insertion order.
func (repo *plannedFoodRepository) ListByMealPlan(ctx context.Context, userID, mealPlanID uuid.UUID) ([]*entity.PlannedFood, error) {
	f := repo.q.PlannedFoodModel

	return repo.list(ctx, f.UserID.Eq(userID), f.MealPlanID.Eq(mealPlanID))
}

// ListByUser returns every planned food of the user across all meal plans.
func (repo *plannedFoodRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PlannedFood, error) {
	return repo.list(ctx, repo.q.PlannedFoodModel.UserID.Eq(userID))
}

func (repo *plannedFoodRepository) list(ctx context.Context, conds ...gen.Condition) ([]*entity.PlannedFood, error) {
	f := repo.q.PlannedFoodModel
	foodMs, err := f.WithContext(ctx).
		Where(conds...).
		Order(f.CreatedAt, f.ID).
		Find()
	if err != nil {
		return nil, translateError(err, "failed to list planned foods")
	}

	foods := make([]*entity.PlannedFood, 0, len(foodMs))
	for _, m := range foodMs {
		foods = append(foods, toPlannedFoodDomain(m))
	}

	return foods, nil
}

// FindByID retrieves a single planned food owned by the user.
func (repo *plannedFoodRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.PlannedFood, error) {
	f := repo.q.PlannedFoodModel
	foodM, err := f.WithContext(ctx).
		Where(f.ID.Eq(id), f.UserID.Eq(userID)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlannedFoodNotFound
		}

		return nil, translateError(err, "failed to find planned food")
	}

	return toPlannedFoodDomain(foodM), nil
}

// Create persists a new planned food and copies the stored created_at back onto it.
func (repo *plannedFoodRepository) Create(ctx context.Context, food *entity.PlannedFood) error {
	if food.ID == uuid.Nil {
		food.ID = uuid.New()
	}

	foodM := fromPlannedFoodDomain(food)
	if err := repo.q.PlannedFoodModel.WithContext(ctx).Create(foodM); err != nil {
		return translateError(err, "failed to create planned food")
	}

	food.CreatedAt = foodM.CreatedAt

	return nil
}

// Update overwrites every mutable column, including meal_plan_id so a food can move between plans.
func (repo *plannedFoodRepository) Update(ctx context.Context, food *entity.PlannedFood) error {
	f := repo.q.PlannedFoodModel
	info, err := f.WithContext(ctx).
		Where(f.ID.Eq(food.ID), f.UserID.Eq(food.UserID)).
		Updates(map[string]any{
			"meal_plan_id":   food.MealPlanID,
			"food_name":      food.FoodName,
			"quantity_grams": food.QuantityGrams,
			"calories":       food.Calories,
			"protein":        food.Protein,
			"carbs":          food.Carbs,
			"fat":            food.Fat,
		})
	if err != nil {
		return translateError(err, "failed to update planned food")
	}
	if info.RowsAffected == 0 {
		return repository.ErrPlannedFoodNotFound
	}

	return nil
}

// Delete removes one planned food of the user.
func (repo *plannedFoodRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	f := repo.q.PlannedFoodModel
	info, err := f.WithContext(ctx).
		Where(f.ID.Eq(id), f.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return translateError(err, "failed to delete planned food")
	}
	if info.RowsAffected == 0 {
		return repository.ErrPlannedFoodNotFound
	}

	return nil
}

// DeleteByMealPlan removes all planned foods of a meal plan. Deleting zero rows is not an error.
func (repo *plannedFoodRepository) DeleteByMealPlan(ctx context.Context, userID, mealPlanID uuid.UUID) error {
	f := repo.q.PlannedFoodModel
	_, err := f.WithContext(ctx).
		Where(f.UserID.Eq(userID), f.MealPlanID.Eq(mealPlanID)).
		Delete()
	if err != nil {
		return translateError(err, "failed to delete planned foods of meal plan")
	}

	return nil
}

func toPlannedFoodDomain(m *model.PlannedFoodModel) *entity.PlannedFood {
	return &entity.PlannedFood{
		ID:            m.ID,
		UserID:        m.UserID,
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

func fromPlannedFoodDomain(f *entity.PlannedFood) *model.PlannedFoodModel {
	return &model.PlannedFoodModel{
		ID:            f.ID,
		UserID:        f.UserID,
		MealPlanID:    f.MealPlanID,
		FoodName:      f.FoodName,
		QuantityGrams: f.QuantityGrams,
		Calories:      f.Calories,
		Protein:       f.Protein,
		Carbs:         f.Carbs,
		Fat:           f.Fat,
		CreatedAt:     f.CreatedAt,
	}
}
