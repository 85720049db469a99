package handler

import (
	"log/slog"
	"net/http"

	"macrolog/internal/delivery/api/response"
	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PlannedFoodHandlerParams holds dependencies for PlannedFoodHandler, injected by Fx.
type PlannedFoodHandlerParams struct {
	fx.In

	PlannedFoodUC usecase.PlannedFoodUsecase
	Logger        *slog.Logger
}

// PlannedFoodHandler serves the foods prescribed for each meal.
type PlannedFoodHandler struct {
	plannedFoodUC usecase.PlannedFoodUsecase
	logger        *slog.Logger
}

// NewPlannedFoodHandler is the constructor for PlannedFoodHandler
func NewPlannedFoodHandler(params PlannedFoodHandlerParams) *PlannedFoodHandler {
	return &PlannedFoodHandler{
		plannedFoodUC: params.PlannedFoodUC,
		logger:        params.Logger,
	}
}

// CreatePlannedFoodRequest is the body of POST /planned-foods.
type CreatePlannedFoodRequest struct {
	MealPlanID    string   `json:"meal_plan_id" validate:"required,uuid"`
	FoodName      string   `json:"food_name" validate:"required,max=200"`
	QuantityGrams *float64 `json:"quantity_grams" validate:"required,gte=0"`
	Calories      *float64 `json:"calories" validate:"required,gte=0"`
	Protein       *float64 `json:"protein" validate:"omitempty,gte=0"`
	Carbs         *float64 `json:"carbs" validate:"omitempty,gte=0"`
	Fat           *float64 `json:"fat" validate:"omitempty,gte=0"`
}

// UpdatePlannedFoodRequest is the body of PUT /planned-foods/:id.
type UpdatePlannedFoodRequest struct {
	FoodName      *string  `json:"food_name" validate:"omitempty,min=1,max=200"`
	QuantityGrams *float64 `json:"quantity_grams" validate:"omitempty,gte=0"`
	Calories      *float64 `json:"calories" validate:"omitempty,gte=0"`
	Protein       *float64 `json:"protein" validate:"omitempty,gte=0"`
	Carbs         *float64 `json:"carbs" validate:"omitempty,gte=0"`
	Fat           *float64 `json:"fat" validate:"omitempty,gte=0"`
}

// PlannedFoodResponse is the written food and its meal plan with the recomputed target.
type PlannedFoodResponse struct {
	*entity.PlannedFood
	MealPlan *entity.MealPlan `json:"meal_plan"`
}

// ListPlannedFoods handles GET /planned-foods, optionally filtered by ?meal_plan_id=.
func (h *PlannedFoodHandler) ListPlannedFoods(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	mealPlanID, err := optionalUUID("meal_plan_id", c.QueryParam("meal_plan_id"))
	if err != nil {
		return err
	}

	foods, err := h.plannedFoodUC.List(c.Request().Context(), userID, mealPlanID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods)
}

// CreatePlannedFood handles POST /planned-foods.
func (h *PlannedFoodHandler) CreatePlannedFood(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreatePlannedFoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	mealPlanID, err := uuid.Parse(req.MealPlanID)
	if err != nil {
		return domainerrors.NewValidationError("meal_plan_id must be a valid UUID")
	}

	out, err := h.plannedFoodUC.Create(c.Request().Context(), userID, usecase.CreatePlannedFoodInput{
		MealPlanID:    mealPlanID,
		FoodName:      req.FoodName,
		QuantityGrams: *req.QuantityGrams,
		Calories:      *req.Calories,
		Protein:       valueOrZero(req.Protein),
		Carbs:         valueOrZero(req.Carbs),
		Fat:           valueOrZero(req.Fat),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, PlannedFoodResponse{PlannedFood: out.Food, MealPlan: out.MealPlan})
}

// UpdatePlannedFood handles PUT /planned-foods/:id.
func (h *PlannedFoodHandler) UpdatePlannedFood(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdatePlannedFoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.plannedFoodUC.Update(c.Request().Context(), userID, id, usecase.UpdatePlannedFoodInput{
		FoodName:      req.FoodName,
		QuantityGrams: req.QuantityGrams,
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbs:         req.Carbs,
		Fat:           req.Fat,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, PlannedFoodResponse{PlannedFood: out.Food, MealPlan: out.MealPlan})
}

// DeletePlannedFood handles DELETE /planned-foods/:id.
func (h *PlannedFoodHandler) DeletePlannedFood(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	plan, err := h.plannedFoodUC.Delete(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, struct {
		DeletedResponse
		MealPlan *entity.MealPlan `json:"meal_plan"`
	}{DeletedResponse{Success: true}, plan})
}
