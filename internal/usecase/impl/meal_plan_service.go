package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	deliverycontext "macrolog/internal/delivery/context"
	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/nutrition"
	"macrolog/internal/domain/repository"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mealPlanService implements the MealPlanUsecase interface.
type mealPlanService struct {
	txManager    repository.TransactionManager
	mealPlanRepo repository.MealPlanRepository
	logger       *slog.Logger
}

// MealPlanServiceParams holds dependencies for MealPlanService, injected by Fx.
type MealPlanServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MealPlanRepo repository.MealPlanRepository
	Logger       *slog.Logger
}

// NewMealPlanService is the constructor for mealPlanService.
func NewMealPlanService(params MealPlanServiceParams) usecase.MealPlanUsecase {
	return &mealPlanService{
		txManager:    params.TxManager,
		mealPlanRepo: params.MealPlanRepo,
		logger:       params.Logger,
	}
}

func (srv *mealPlanService) List(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error) {
	plans, err := srv.mealPlanRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal plans")
	}

	return plans, nil
}

func (srv *mealPlanService) Create(ctx context.Context, userID uuid.UUID, input usecase.CreateMealPlanInput) (*entity.MealPlan, error) {
	name, err := requireName("name", input.Name)
	if err != nil {
		return nil, err
	}
	if err := validateNonNegative("target_calories", input.TargetCalories); err != nil {
		return nil, err
	}

	plan := &entity.MealPlan{
		UserID:         userID,
		Name:           name,
		TargetCalories: input.TargetCalories,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		planRepo := repoFactory.MealPlanRepo()

		maxOrder, err := planRepo.MaxMealOrder(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to read meal order")
		}
		plan.MealOrder = maxOrder + 1

		return errors.Wrap(planRepo.Create(ctx, plan), "failed to create meal plan")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create meal plan")
	}

	return plan, nil
}

func (srv *mealPlanService) CreateDefaults(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error) {
	var plans []*entity.MealPlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		planRepo := repoFactory.MealPlanRepo()

		existing, err := planRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list meal plans")
		}
		if len(existing) > 0 {
			plans = existing

			return nil
		}

		plans = make([]*entity.MealPlan, 0, len(entity.DefaultMealPlans))
		for _, def := range entity.DefaultMealPlans {
			plans = append(plans, &entity.MealPlan{
				UserID:         userID,
				Name:           def.Name,
				TargetCalories: def.TargetCalories,
				MealOrder:      def.MealOrder,
				IsDefault:      true,
			})
		}

		return errors.Wrap(planRepo.CreateBatch(ctx, plans), "failed to create default meal plans")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create default meal plans")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Default meal plans ensured",
		slog.String("userID", userID.String()),
		slog.Int("count", len(plans)),
	)

	return plans, nil
}

// targetTolerance absorbs float rounding when comparing a requested target
// with the calorie sum of the planned foods.
const targetTolerance = 0.01

// Update applies the partial input under the meal plan row lock. While the plan
// has planned foods its target is their calorie sum, so a different
// target_calories is rejected instead of being silently overwritten later.
func (srv *mealPlanService) Update(ctx context.Context, userID, id uuid.UUID, input usecase.UpdateMealPlanInput) (*entity.MealPlan, error) {
	var name string
	if input.Name != nil {
		var err error
		if name, err = requireName("name", *input.Name); err != nil {
			return nil, err
		}
	}
	if input.TargetCalories != nil {
		if err := validateNonNegative("target_calories", *input.TargetCalories); err != nil {
			return nil, err
		}
	}
	if input.MealOrder != nil && *input.MealOrder < 0 {
		return nil, domainerrors.NewValidationError("meal_order must be a non-negative integer")
	}

	var plan *entity.MealPlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		planRepo := repoFactory.MealPlanRepo()

		var err error
		plan, err = planRepo.LockByID(ctx, userID, id)
		if err != nil {
			return mapNotFound(err, repository.ErrMealPlanNotFound, domainerrors.ErrMealPlanNotFound, "failed to find meal plan")
		}

		if input.Name != nil {
			plan.Name = name
		}
		if input.MealOrder != nil {
			plan.MealOrder = *input.MealOrder
		}
		if input.TargetCalories != nil {
			foods, err := repoFactory.PlannedFoodRepo().ListByMealPlan(ctx, userID, id)
			if err != nil {
				return errors.Wrap(err, "failed to list planned foods")
			}

			if len(foods) > 0 {
				planned := nutrition.SumPlanned(foods).Calories
				if math.Abs(planned-*input.TargetCalories) > targetTolerance {
					return domainerrors.NewValidationError(fmt.Sprintf(
						"target_calories is derived from planned foods (%.2f) and cannot be set directly", planned))
				}
				plan.TargetCalories = planned
			} else {
				plan.TargetCalories = *input.TargetCalories
			}
		}

		if err := planRepo.Update(ctx, plan); err != nil {
			return mapNotFound(err, repository.ErrMealPlanNotFound, domainerrors.ErrMealPlanNotFound, "failed to update meal plan")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update meal plan")
	}

	return plan, nil
}

func (srv *mealPlanService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		planRepo := repoFactory.MealPlanRepo()

		if _, err := planRepo.LockByID(ctx, userID, id); err != nil {
			return mapNotFound(err, repository.ErrMealPlanNotFound, domainerrors.ErrMealPlanNotFound, "failed to find meal plan")
		}

		if err := repoFactory.PlannedFoodRepo().DeleteByMealPlan(ctx, userID, id); err != nil {
			return errors.Wrap(err, "failed to delete planned foods")
		}

		if err := planRepo.Delete(ctx, userID, id); err != nil {
			return mapNotFound(err, repository.ErrMealPlanNotFound, domainerrors.ErrMealPlanNotFound, "failed to delete meal plan")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete meal plan")
	}

	return nil
}
