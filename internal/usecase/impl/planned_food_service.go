package impl

import (
	"context"
	"log/slog"

	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/nutrition"
	"macrolog/internal/domain/repository"
	"macrolog/internal/domain/service"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// plannedFoodService implements the PlannedFoodUsecase interface.
type plannedFoodService struct {
	txManager       repository.TransactionManager
	plannedFoodRepo repository.PlannedFoodRepository
	events          eventPublisher
}

// PlannedFoodServiceParams holds dependencies for PlannedFoodService, injected by Fx.
type PlannedFoodServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	PlannedFoodRepo repository.PlannedFoodRepository
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewPlannedFoodService is the constructor for plannedFoodService.
func NewPlannedFoodService(params PlannedFoodServiceParams) usecase.PlannedFoodUsecase {
	return &plannedFoodService{
		txManager:       params.TxManager,
		plannedFoodRepo: params.PlannedFoodRepo,
		events:          eventPublisher{publisher: params.Publisher, logger: params.Logger},
	}
}

func (srv *plannedFoodService) List(ctx context.Context, userID uuid.UUID, mealPlanID *uuid.UUID) ([]*entity.PlannedFood, error) {
	var (
		foods []*entity.PlannedFood
		err   error
	)
	if mealPlanID != nil {
		foods, err = srv.plannedFoodRepo.ListByMealPlan(ctx, userID, *mealPlanID)
	} else {
		foods, err = srv.plannedFoodRepo.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list planned foods")
	}

	return foods, nil
}

func (srv *plannedFoodService) Create(ctx context.Context, userID uuid.UUID, input usecase.CreatePlannedFoodInput) (*usecase.PlannedFoodResult, error) {
	name, err := requireName("food_name", input.FoodName)
	if err != nil {
		return nil, err
	}
	if err := validateNonNegative("quantity_grams", input.QuantityGrams); err != nil {
		return nil, err
	}

	food := &entity.PlannedFood{
		UserID:        userID,
		MealPlanID:    input.MealPlanID,
		FoodName:      name,
		QuantityGrams: input.QuantityGrams,
		Nutrients: entity.Nutrients{
			Calories: input.Calories,
			Protein:  input.Protein,
			Carbs:    input.Carbs,
			Fat:      input.Fat,
		},
	}
	if err := validateNutrients(food.Nutrients); err != nil {
		return nil, err
	}

	var plan *entity.MealPlan
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := lockMealPlan(ctx, repoFactory, userID, input.MealPlanID); err != nil {
			return err
		}

		if err := repoFactory.PlannedFoodRepo().Create(ctx, food); err != nil {
			return errors.Wrap(err, "failed to create planned food")
		}

		plan, err = recomputeTarget(ctx, repoFactory, userID, input.MealPlanID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create planned food")
	}

	srv.publishRecompute(ctx, plan)

	return &usecase.PlannedFoodResult{Food: food, MealPlan: plan}, nil
}

func (srv *plannedFoodService) Update(ctx context.Context, userID, id uuid.UUID, input usecase.UpdatePlannedFoodInput) (*usecase.PlannedFoodResult, error) {
	var (
		food *entity.PlannedFood
		plan *entity.MealPlan
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foodRepo := repoFactory.PlannedFoodRepo()

		found, err := foodRepo.FindByID(ctx, userID, id)
		if err != nil {
			return mapNotFound(err, repository.ErrPlannedFoodNotFound, domainerrors.ErrPlannedFoodNotFound, "failed to find planned food")
		}

		if err := lockMealPlan(ctx, repoFactory, userID, found.MealPlanID); err != nil {
			return err
		}

		if err := applyPlannedFoodInput(found, input); err != nil {
			return err
		}

		if err := foodRepo.Update(ctx, found); err != nil {
			return mapNotFound(err, repository.ErrPlannedFoodNotFound, domainerrors.ErrPlannedFoodNotFound, "failed to update planned food")
		}
		food = found

		plan, err = recomputeTarget(ctx, repoFactory, userID, found.MealPlanID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update planned food")
	}

	srv.publishRecompute(ctx, plan)

	return &usecase.PlannedFoodResult{Food: food, MealPlan: plan}, nil
}

func (srv *plannedFoodService) Delete(ctx context.Context, userID, id uuid.UUID) (*entity.MealPlan, error) {
	var plan *entity.MealPlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foodRepo := repoFactory.PlannedFoodRepo()

		found, err := foodRepo.FindByID(ctx, userID, id)
		if err != nil {
			return mapNotFound(err, repository.ErrPlannedFoodNotFound, domainerrors.ErrPlannedFoodNotFound, "failed to find planned food")
		}

		if err := lockMealPlan(ctx, repoFactory, userID, found.MealPlanID); err != nil {
			return err
		}

		if err := foodRepo.Delete(ctx, userID, id); err != nil {
			return mapNotFound(err, repository.ErrPlannedFoodNotFound, domainerrors.ErrPlannedFoodNotFound, "failed to delete planned food")
		}

		plan, err = recomputeTarget(ctx, repoFactory, userID, found.MealPlanID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete planned food")
	}

	srv.publishRecompute(ctx, plan)

	return plan, nil
}

func (srv *plannedFoodService) publishRecompute(ctx context.Context, plan *entity.MealPlan) {
	srv.events.publish(ctx, &service.MealEvent{
		Type:           service.MealEventTargetRecomputed,
		UserID:         plan.UserID.String(),
		MealPlanID:     plan.ID.String(),
		TargetCalories: plan.TargetCalories,
	})
}

// lockMealPlan serializes planned-food writes of one meal plan until the transaction ends.
func lockMealPlan(ctx context.Context, repoFactory repository.RepositoryFactory, userID, mealPlanID uuid.UUID) error {
	if _, err := repoFactory.MealPlanRepo().LockByID(ctx, userID, mealPlanID); err != nil {
		return mapNotFound(err, repository.ErrMealPlanNotFound, domainerrors.ErrMealPlanNotFound, "failed to lock meal plan")
	}

	return nil
}

// recomputeTarget sets the meal plan target to the calorie sum of its planned
// foods. With no planned foods left the stored target is kept.
func recomputeTarget(ctx context.Context, repoFactory repository.RepositoryFactory, userID, mealPlanID uuid.UUID) (*entity.MealPlan, error) {
	planRepo := repoFactory.MealPlanRepo()

	foods, err := repoFactory.PlannedFoodRepo().ListByMealPlan(ctx, userID, mealPlanID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list planned foods")
	}

	if len(foods) > 0 {
		target := nutrition.SumPlanned(foods).Calories
		if err := planRepo.UpdateTargetCalories(ctx, userID, mealPlanID, target); err != nil {
			return nil, mapNotFound(err, repository.ErrMealPlanNotFound, domainerrors.ErrMealPlanNotFound, "failed to update meal plan target")
		}
	}

	plan, err := planRepo.FindByID(ctx, userID, mealPlanID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrMealPlanNotFound, domainerrors.ErrMealPlanNotFound, "failed to reload meal plan")
	}

	return plan, nil
}

func applyPlannedFoodInput(food *entity.PlannedFood, input usecase.UpdatePlannedFoodInput) error {
	if input.FoodName != nil {
		name, err := requireName("food_name", *input.FoodName)
		if err != nil {
			return err
		}
		food.FoodName = name
	}
	if input.QuantityGrams != nil {
		if err := validateNonNegative("quantity_grams", *input.QuantityGrams); err != nil {
			return err
		}
		food.QuantityGrams = *input.QuantityGrams
	}

	food.Calories = valueOr(input.Calories, food.Calories)
	food.Protein = valueOr(input.Protein, food.Protein)
	food.Carbs = valueOr(input.Carbs, food.Carbs)
	food.Fat = valueOr(input.Fat, food.Fat)

	return validateNutrients(food.Nutrients)
}
