package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"macrolog/internal/domain/entity"
	mockUsecase "macrolog/internal/mocks/usecase"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlannedFoodTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockPlannedFoodUsecase, uuid.UUID) {
	plannedFoodUC := mockUsecase.NewMockPlannedFoodUsecase(t)
	h := NewPlannedFoodHandler(PlannedFoodHandlerParams{PlannedFoodUC: plannedFoodUC, Logger: newDiscardLogger()})
	userID := uuid.New()
	auth := asUser(userID)

	e := newTestEcho()
	e.GET("/planned-foods", h.ListPlannedFoods, auth)
	e.POST("/planned-foods", h.CreatePlannedFood, auth)
	e.PUT("/planned-foods/:id", h.UpdatePlannedFood, auth)
	e.DELETE("/planned-foods/:id", h.DeletePlannedFood, auth)

	return e, plannedFoodUC, userID
}

func TestPlannedFoodHandler_ListByMealPlan(t *testing.T) {
	e, plannedFoodUC, userID := newPlannedFoodTestServer(t)
	mealPlanID := uuid.New()

	plannedFoodUC.EXPECT().
		List(mock.Anything, userID, &mealPlanID).
		Return([]*entity.PlannedFood{{ID: uuid.New(), MealPlanID: mealPlanID, FoodName: "oats"}}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/planned-foods?meal_plan_id="+mealPlanID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"food_name":"oats"`)
}

func TestPlannedFoodHandler_ListAll(t *testing.T) {
	e, plannedFoodUC, userID := newPlannedFoodTestServer(t)

	plannedFoodUC.EXPECT().List(mock.Anything, userID, (*uuid.UUID)(nil)).Return([]*entity.PlannedFood{}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/planned-foods", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}

func TestPlannedFoodHandler_CreateReturnsRecomputedPlan(t *testing.T) {
	e, plannedFoodUC, userID := newPlannedFoodTestServer(t)
	mealPlanID := uuid.New()
	food := &entity.PlannedFood{
		ID:            uuid.New(),
		UserID:        userID,
		MealPlanID:    mealPlanID,
		FoodName:      "oats",
		QuantityGrams: 80,
		Nutrients:     entity.Nutrients{Calories: 300, Protein: 10},
	}

	plannedFoodUC.EXPECT().
		Create(mock.Anything, userID, usecase.CreatePlannedFoodInput{
			MealPlanID:    mealPlanID,
			FoodName:      "oats",
			QuantityGrams: 80,
			Calories:      300,
			Protein:       10,
		}).
		Return(&usecase.PlannedFoodResult{
			Food:     food,
			MealPlan: &entity.MealPlan{ID: mealPlanID, UserID: userID, Name: "Breakfast", TargetCalories: 300},
		}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/planned-foods",
		`{"meal_plan_id":"`+mealPlanID.String()+`","food_name":"oats","quantity_grams":80,"calories":300,"protein":10}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var data struct {
		FoodName string `json:"food_name"`
		Calories float64
		MealPlan struct {
			TargetCalories float64 `json:"target_calories"`
		} `json:"meal_plan"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, "oats", data.FoodName)
	assert.Equal(t, 300.0, data.Calories)
	assert.Equal(t, 300.0, data.MealPlan.TargetCalories)
}

func TestPlannedFoodHandler_CreateRequiresCalories(t *testing.T) {
	e, _, _ := newPlannedFoodTestServer(t)

	rec := doRequest(e, http.MethodPost, "/planned-foods",
		`{"meal_plan_id":"`+uuid.NewString()+`","food_name":"oats","quantity_grams":80}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "calories is required", decodeEnvelope(t, rec).Error)
}

func TestPlannedFoodHandler_CreateAllowsZeroQuantity(t *testing.T) {
	e, plannedFoodUC, userID := newPlannedFoodTestServer(t)
	mealPlanID := uuid.New()

	plannedFoodUC.EXPECT().
		Create(mock.Anything, userID, mock.MatchedBy(func(in usecase.CreatePlannedFoodInput) bool {
			return in.QuantityGrams == 0 && in.Calories == 0
		})).
		Return(&usecase.PlannedFoodResult{Food: &entity.PlannedFood{}, MealPlan: &entity.MealPlan{}}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/planned-foods",
		`{"meal_plan_id":"`+mealPlanID.String()+`","food_name":"water","quantity_grams":0,"calories":0}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestPlannedFoodHandler_Update(t *testing.T) {
	e, plannedFoodUC, userID := newPlannedFoodTestServer(t)
	id := uuid.New()

	plannedFoodUC.EXPECT().
		Update(mock.Anything, userID, id, usecase.UpdatePlannedFoodInput{Calories: ptr(400.0)}).
		Return(&usecase.PlannedFoodResult{
			Food:     &entity.PlannedFood{ID: id, Nutrients: entity.Nutrients{Calories: 400}},
			MealPlan: &entity.MealPlan{TargetCalories: 400},
		}, nil).
		Once()

	rec := doRequest(e, http.MethodPut, "/planned-foods/"+id.String(), `{"calories":400}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"target_calories":400`)
}

func TestPlannedFoodHandler_Delete(t *testing.T) {
	e, plannedFoodUC, userID := newPlannedFoodTestServer(t)
	id := uuid.New()

	plannedFoodUC.EXPECT().
		Delete(mock.Anything, userID, id).
		Return(&entity.MealPlan{TargetCalories: 50}, nil).
		Once()

	rec := doRequest(e, http.MethodDelete, "/planned-foods/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := string(decodeEnvelope(t, rec).Data)
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"target_calories":50`)
}
