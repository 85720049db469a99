package handler

import (
	"log/slog"
	"net/http"

	"macrolog/internal/delivery/api/response"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ActionCreateDefaults seeds the default meals through POST /meal-plans.
const ActionCreateDefaults = "createDefaults"

// MealPlanHandlerParams holds dependencies for MealPlanHandler, injected by Fx.
type MealPlanHandlerParams struct {
	fx.In

	MealPlanUC usecase.MealPlanUsecase
	Logger     *slog.Logger
}

// MealPlanHandler serves the caller's meal slots.
type MealPlanHandler struct {
	mealPlanUC usecase.MealPlanUsecase
	logger     *slog.Logger
}

// NewMealPlanHandler is the constructor for MealPlanHandler
func NewMealPlanHandler(params MealPlanHandlerParams) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanUC: params.MealPlanUC,
		logger:     params.Logger,
	}
}

// MealPlanActionRequest is the body of POST /meal-plans.
type MealPlanActionRequest struct {
	Action         string   `json:"action" validate:"required,oneof=create createDefaults"`
	Name           string   `json:"name" validate:"max=100"`
	TargetCalories *float64 `json:"target_calories" validate:"omitempty,gte=0"`
}

// UpdateMealPlanRequest is the body of PUT /meal-plans/:id.
type UpdateMealPlanRequest struct {
	Name           *string  `json:"name" validate:"omitempty,min=1,max=100"`
	TargetCalories *float64 `json:"target_calories" validate:"omitempty,gte=0"`
	MealOrder      *int     `json:"meal_order" validate:"omitempty,gte=0"`
}

// ListMealPlans handles GET /meal-plans.
func (h *MealPlanHandler) ListMealPlans(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	plans, err := h.mealPlanUC.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plans)
}

// PostMealPlan handles POST /meal-plans for the create and createDefaults actions.
func (h *MealPlanHandler) PostMealPlan(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req MealPlanActionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	switch req.Action {
	case ActionCreateDefaults:
		plans, err := h.mealPlanUC.CreateDefaults(c.Request().Context(), userID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, plans)
	case ActionCreate:
		plan, err := h.mealPlanUC.Create(c.Request().Context(), userID, usecase.CreateMealPlanInput{
			Name:           req.Name,
			TargetCalories: valueOrZero(req.TargetCalories),
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusCreated, plan)
	default:
		return domainerrors.NewValidationError("action must be one of: create, createDefaults")
	}
}

// UpdateMealPlan handles PUT /meal-plans/:id.
func (h *MealPlanHandler) UpdateMealPlan(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateMealPlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	plan, err := h.mealPlanUC.Update(c.Request().Context(), userID, id, usecase.UpdateMealPlanInput{
		Name:           req.Name,
		TargetCalories: req.TargetCalories,
		MealOrder:      req.MealOrder,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan)
}

// DeleteMealPlan handles DELETE /meal-plans/:id. Its planned foods go with it.
func (h *MealPlanHandler) DeleteMealPlan(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.mealPlanUC.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, DeletedResponse{Success: true})
}
