package usecase

import (
	"context"

	"macrolog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMealPlanInput defines a new meal slot. It is appended after the last one.
type CreateMealPlanInput struct {
	Name           string
	TargetCalories float64
}

// UpdateMealPlanInput holds the fields to change. Nil keeps the stored value.
type UpdateMealPlanInput struct {
	Name           *string
	TargetCalories *float64
	MealOrder      *int
}

// MealPlanUsecase defines meal slot operations.
type MealPlanUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error)
	Create(ctx context.Context, userID uuid.UUID, input CreateMealPlanInput) (*entity.MealPlan, error)

	// CreateDefaults seeds the default meals. It returns the existing plans unchanged
	// when the user already has any.
	CreateDefaults(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error)

	Update(ctx context.Context, userID, id uuid.UUID, input UpdateMealPlanInput) (*entity.MealPlan, error)

	// Delete removes the plan and its planned foods.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CreatePlannedFoodInput defines a prescribed food.
type CreatePlannedFoodInput struct {
	MealPlanID    uuid.UUID
	FoodName      string
	QuantityGrams float64
	Calories      float64
	Protein       float64
	Carbs         float64
	Fat           float64
}

// UpdatePlannedFoodInput holds the fields to change. Nil keeps the stored value.
type UpdatePlannedFoodInput struct {
	FoodName      *string
	QuantityGrams *float64
	Calories      *float64
	Protein       *float64
	Carbs         *float64
	Fat           *float64
}

// PlannedFoodResult carries the written food and its meal plan after the target recompute.
type PlannedFoodResult struct {
	Food     *entity.PlannedFood
	MealPlan *entity.MealPlan
}

// PlannedFoodUsecase defines planned food operations. Every mutation recomputes
// the owning meal plan's target in the same transaction.
type PlannedFoodUsecase interface {
	// List returns all of the user's planned foods, or those of one meal plan.
	List(ctx context.Context, userID uuid.UUID, mealPlanID *uuid.UUID) ([]*entity.PlannedFood, error)
	Create(ctx context.Context, userID uuid.UUID, input CreatePlannedFoodInput) (*PlannedFoodResult, error)
	Update(ctx context.Context, userID, id uuid.UUID, input UpdatePlannedFoodInput) (*PlannedFoodResult, error)

	// Delete returns the meal plan after the recompute.
	Delete(ctx context.Context, userID, id uuid.UUID) (*entity.MealPlan, error)
}
