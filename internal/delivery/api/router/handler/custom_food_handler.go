package handler

import (
	"log/slog"
	"net/http"

	"macrolog/internal/delivery/api/response"
	"macrolog/internal/domain/entity"
	"macrolog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CustomFoodHandlerParams holds dependencies for CustomFoodHandler, injected by Fx.
type CustomFoodHandlerParams struct {
	fx.In

	CustomFoodUC usecase.CustomFoodUsecase
	Logger       *slog.Logger
}

// CustomFoodHandler serves the caller's reusable foods.
type CustomFoodHandler struct {
	customFoodUC usecase.CustomFoodUsecase
	logger       *slog.Logger
}

// NewCustomFoodHandler is the constructor for CustomFoodHandler
func NewCustomFoodHandler(params CustomFoodHandlerParams) *CustomFoodHandler {
	return &CustomFoodHandler{
		customFoodUC: params.CustomFoodUC,
		logger:       params.Logger,
	}
}

// UpsertCustomFoodRequest is the body of POST /custom-foods.
type UpsertCustomFoodRequest struct {
	FoodName        string   `json:"food_name" validate:"required,max=200"`
	CaloriesPer100g *float64 `json:"calories_per_100g" validate:"required,gte=0"`
	ProteinPer100g  *float64 `json:"protein_per_100g" validate:"omitempty,gte=0"`
	CarbsPer100g    *float64 `json:"carbs_per_100g" validate:"omitempty,gte=0"`
	FatPer100g      *float64 `json:"fat_per_100g" validate:"omitempty,gte=0"`
	Brand           *string  `json:"brand" validate:"omitempty,max=100"`
}

// UpdateCustomFoodRequest is the body of PUT /custom-foods/:id.
type UpdateCustomFoodRequest struct {
	FoodName        *string  `json:"food_name" validate:"omitempty,min=1,max=200"`
	CaloriesPer100g *float64 `json:"calories_per_100g" validate:"omitempty,gte=0"`
	ProteinPer100g  *float64 `json:"protein_per_100g" validate:"omitempty,gte=0"`
	CarbsPer100g    *float64 `json:"carbs_per_100g" validate:"omitempty,gte=0"`
	FatPer100g      *float64 `json:"fat_per_100g" validate:"omitempty,gte=0"`
	Brand           *string  `json:"brand" validate:"omitempty,max=100"`
}

// SearchCustomFoods handles GET /custom-foods?search=.
func (h *CustomFoodHandler) SearchCustomFoods(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	foods, err := h.customFoodUC.Search(c.Request().Context(), userID, c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods)
}

// UpsertCustomFood handles POST /custom-foods: 201 when created, 200 when an
// existing food with the same name was overwritten.
func (h *CustomFoodHandler) UpsertCustomFood(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpsertCustomFoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	food, created, err := h.customFoodUC.Upsert(c.Request().Context(), userID, usecase.UpsertCustomFoodInput{
		FoodName: req.FoodName,
		Per100g: entity.Nutrients{
			Calories: *req.CaloriesPer100g,
			Protein:  valueOrZero(req.ProteinPer100g),
			Carbs:    valueOrZero(req.CarbsPer100g),
			Fat:      valueOrZero(req.FatPer100g),
		},
		Brand: req.Brand,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, food)
}

// UpdateCustomFood handles PUT /custom-foods/:id.
func (h *CustomFoodHandler) UpdateCustomFood(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateCustomFoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	food, err := h.customFoodUC.Update(c.Request().Context(), userID, id, usecase.UpdateCustomFoodInput{
		FoodName: req.FoodName,
		Calories: req.CaloriesPer100g,
		Protein:  req.ProteinPer100g,
		Carbs:    req.CarbsPer100g,
		Fat:      req.FatPer100g,
		Brand:    req.Brand,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, food)
}

// DeleteCustomFood handles DELETE /custom-foods/:id.
func (h *CustomFoodHandler) DeleteCustomFood(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.customFoodUC.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, DeletedResponse{Success: true})
}
