package repository

import (
	"context"
	"errors"

	"macrolog/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrMealPlanNotFound    = errors.New("meal plan not found")
	ErrPlannedFoodNotFound = errors.New("planned food not found")
)

// MealPlanRepository stores meal slots.
type MealPlanRepository interface {
	// ListByUser returns plans ordered by meal_order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error)

	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.MealPlan, error)

	// LockByID loads the plan with a row lock held until the surrounding
	// transaction ends. Only meaningful inside TransactionManager.Execute.
	LockByID(ctx context.Context, userID, id uuid.UUID) (*entity.MealPlan, error)

	// MaxMealOrder returns the highest meal_order of the user, 0 when none.
	MaxMealOrder(ctx context.Context, userID uuid.UUID) (int, error)

	Create(ctx context.Context, plan *entity.MealPlan) error

	CreateBatch(ctx context.Context, plans []*entity.MealPlan) error

	// Update writes name, target_calories and meal_order.
	Update(ctx context.Context, plan *entity.MealPlan) error

	UpdateTargetCalories(ctx context.Context, userID, id uuid.UUID, targetCalories float64) error

	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// PlannedFoodRepository stores prescribed foods of meal plans.
type PlannedFoodRepository interface {
	// ListByMealPlan returns foods in creation order.
	ListByMealPlan(ctx context.Context, userID, mealPlanID uuid.UUID) ([]*entity.PlannedFood, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PlannedFood, error)

	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.PlannedFood, error)

	Create(ctx context.Context, food *entity.PlannedFood) error

	Update(ctx context.Context, food *entity.PlannedFood) error

	Delete(ctx context.Context, userID, id uuid.UUID) error

	DeleteByMealPlan(ctx context.Context, userID, mealPlanID uuid.UUID) error
}
