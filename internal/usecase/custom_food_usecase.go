package usecase

import (
	"context"

	"macrolog/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertCustomFoodInput defines a custom food. Calories per 100 g is required.
// An existing food with the same name, ignoring case, is overwritten.
type UpsertCustomFoodInput struct {
	FoodName string
	Per100g  entity.Nutrients
	Brand    *string
}

// UpdateCustomFoodInput holds the fields to change. Nil keeps the stored value.
type UpdateCustomFoodInput struct {
	FoodName *string
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
	Brand    *string
}

// CustomFoodUsecase defines custom food operations.
type CustomFoodUsecase interface {
	Search(ctx context.Context, userID uuid.UUID, term string) ([]*entity.CustomFood, error)

	// Upsert reports created=false when an existing food was overwritten.
	Upsert(ctx context.Context, userID uuid.UUID, input UpsertCustomFoodInput) (food *entity.CustomFood, created bool, err error)

	Update(ctx context.Context, userID, id uuid.UUID, input UpdateCustomFoodInput) (*entity.CustomFood, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
