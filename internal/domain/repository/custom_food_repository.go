package repository

import (
	"context"
	"errors"

	"macrolog/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrCustomFoodNotFound = errors.New("custom food not found")
	ErrCustomFoodConflict = errors.New("custom food name already taken")
)

// CustomFoodRepository stores user-defined foods. Names are unique per user ignoring case.
type CustomFoodRepository interface {
	// Search matches name substrings case-insensitively, sorted by name.
	// An empty term lists everything up to limit.
	Search(ctx context.Context, userID uuid.UUID, term string, limit int) ([]*entity.CustomFood, error)

	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.CustomFood, error)

	// FindByName is an exact, case-insensitive name lookup.
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*entity.CustomFood, error)

	Create(ctx context.Context, food *entity.CustomFood) error

	// Update returns ErrCustomFoodConflict when the new name collides with another food.
	Update(ctx context.Context, food *entity.CustomFood) error

	Delete(ctx context.Context, userID, id uuid.UUID) error
}
