package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "macrolog/internal/delivery/context"
	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/repository"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// searchLimit caps custom food search results.
const searchLimit = 50

// customFoodService implements the CustomFoodUsecase interface.
type customFoodService struct {
	customFoodRepo repository.CustomFoodRepository
	logger         *slog.Logger
}

// NewCustomFoodService is the constructor for customFoodService.
func NewCustomFoodService(customFoodRepo repository.CustomFoodRepository, logger *slog.Logger) usecase.CustomFoodUsecase {
	return &customFoodService{
		customFoodRepo: customFoodRepo,
		logger:         logger,
	}
}

func (srv *customFoodService) Search(ctx context.Context, userID uuid.UUID, term string) ([]*entity.CustomFood, error) {
	foods, err := srv.customFoodRepo.Search(ctx, userID, strings.TrimSpace(term), searchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search custom foods")
	}

	return foods, nil
}

// Upsert overwrites the nutrients of a same-named food. The stored name and,
// when the input carries none, the stored brand are kept.
func (srv *customFoodService) Upsert(ctx context.Context, userID uuid.UUID, input usecase.UpsertCustomFoodInput) (*entity.CustomFood, bool, error) {
	name, err := requireName("food_name", input.FoodName)
	if err != nil {
		return nil, false, err
	}
	if err := validateNutrients(input.Per100g); err != nil {
		return nil, false, err
	}

	existing, err := srv.customFoodRepo.FindByName(ctx, userID, name)
	switch {
	case err == nil:
		existing.Per100g = input.Per100g
		if input.Brand != nil {
			existing.Brand = input.Brand
		}

		if err := srv.customFoodRepo.Update(ctx, existing); err != nil {
			return nil, false, srv.mapWriteError(err, "failed to update custom food")
		}

		return existing, false, nil

	case !errors.Is(err, repository.ErrCustomFoodNotFound):
		return nil, false, errors.Wrap(err, "failed to find custom food")
	}

	food := &entity.CustomFood{
		UserID:   userID,
		FoodName: name,
		Per100g:  input.Per100g,
		Brand:    input.Brand,
	}
	if err := srv.customFoodRepo.Create(ctx, food); err != nil {
		return nil, false, srv.mapWriteError(err, "failed to create custom food")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Custom food created",
		slog.String("userID", userID.String()),
		slog.String("foodName", name),
	)

	return food, true, nil
}

func (srv *customFoodService) Update(ctx context.Context, userID, id uuid.UUID, input usecase.UpdateCustomFoodInput) (*entity.CustomFood, error) {
	food, err := srv.customFoodRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrCustomFoodNotFound, domainerrors.ErrCustomFoodNotFound, "failed to find custom food")
	}

	if input.FoodName != nil {
		name, err := requireName("food_name", *input.FoodName)
		if err != nil {
			return nil, err
		}
		food.FoodName = name
	}
	food.Per100g.Calories = valueOr(input.Calories, food.Per100g.Calories)
	food.Per100g.Protein = valueOr(input.Protein, food.Per100g.Protein)
	food.Per100g.Carbs = valueOr(input.Carbs, food.Per100g.Carbs)
	food.Per100g.Fat = valueOr(input.Fat, food.Per100g.Fat)
	if input.Brand != nil {
		food.Brand = input.Brand
	}

	if err := validateNutrients(food.Per100g); err != nil {
		return nil, err
	}

	if err := srv.customFoodRepo.Update(ctx, food); err != nil {
		return nil, srv.mapWriteError(err, "failed to update custom food")
	}

	return food, nil
}

func (srv *customFoodService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.customFoodRepo.Delete(ctx, userID, id); err != nil {
		return mapNotFound(err, repository.ErrCustomFoodNotFound, domainerrors.ErrCustomFoodNotFound, "failed to delete custom food")
	}

	return nil
}

func (srv *customFoodService) mapWriteError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrCustomFoodConflict):
		return errors.Wrap(domainerrors.ErrCustomFoodConflict, msg)
	case errors.Is(err, repository.ErrCustomFoodNotFound):
		return errors.Wrap(domainerrors.ErrCustomFoodNotFound, msg)
	default:
		return errors.Wrap(err, msg)
	}
}
