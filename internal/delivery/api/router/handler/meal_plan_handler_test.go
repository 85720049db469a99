package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	mockUsecase "macrolog/internal/mocks/usecase"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMealPlanTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockMealPlanUsecase, uuid.UUID) {
	mealPlanUC := mockUsecase.NewMockMealPlanUsecase(t)
	h := NewMealPlanHandler(MealPlanHandlerParams{MealPlanUC: mealPlanUC, Logger: newDiscardLogger()})
	userID := uuid.New()
	auth := asUser(userID)

	e := newTestEcho()
	e.GET("/meal-plans", h.ListMealPlans, auth)
	e.POST("/meal-plans", h.PostMealPlan, auth)
	e.PUT("/meal-plans/:id", h.UpdateMealPlan, auth)
	e.DELETE("/meal-plans/:id", h.DeleteMealPlan, auth)

	return e, mealPlanUC, userID
}

func TestMealPlanHandler_List(t *testing.T) {
	e, mealPlanUC, userID := newMealPlanTestServer(t)

	mealPlanUC.EXPECT().List(mock.Anything, userID).Return([]*entity.MealPlan{
		{ID: uuid.New(), UserID: userID, Name: "Breakfast", TargetCalories: 400, MealOrder: 1, IsDefault: true},
	}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/meal-plans", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var plans []entity.MealPlan
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &plans))
	require.Len(t, plans, 1)
	assert.Equal(t, "Breakfast", plans[0].Name)
}

func TestMealPlanHandler_CreateDefaults(t *testing.T) {
	e, mealPlanUC, userID := newMealPlanTestServer(t)

	plans := make([]*entity.MealPlan, 0, len(entity.DefaultMealPlans))
	for _, d := range entity.DefaultMealPlans {
		plans = append(plans, &entity.MealPlan{ID: uuid.New(), UserID: userID, Name: d.Name, TargetCalories: d.TargetCalories, MealOrder: d.MealOrder, IsDefault: true})
	}
	mealPlanUC.EXPECT().CreateDefaults(mock.Anything, userID).Return(plans, nil).Once()

	rec := doRequest(e, http.MethodPost, "/meal-plans", `{"action":"createDefaults"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []entity.MealPlan
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	require.Len(t, got, 4)
	assert.Equal(t, 600.0, got[1].TargetCalories)
}

func TestMealPlanHandler_Create(t *testing.T) {
	e, mealPlanUC, userID := newMealPlanTestServer(t)

	mealPlanUC.EXPECT().
		Create(mock.Anything, userID, usecase.CreateMealPlanInput{Name: "Supper", TargetCalories: 300}).
		Return(&entity.MealPlan{ID: uuid.New(), UserID: userID, Name: "Supper", TargetCalories: 300, MealOrder: 5}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/meal-plans", `{"action":"create","name":"Supper","target_calories":300}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"meal_order":5`)
}

func TestMealPlanHandler_Update(t *testing.T) {
	e, mealPlanUC, userID := newMealPlanTestServer(t)
	id := uuid.New()

	mealPlanUC.EXPECT().
		Update(mock.Anything, userID, id, usecase.UpdateMealPlanInput{Name: ptr("Brunch"), MealOrder: ptr(2)}).
		Return(&entity.MealPlan{ID: id, UserID: userID, Name: "Brunch", MealOrder: 2}, nil).
		Once()

	rec := doRequest(e, http.MethodPut, "/meal-plans/"+id.String(), `{"name":"Brunch","meal_order":2}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"name":"Brunch"`)
}

func TestMealPlanHandler_UpdateBadID(t *testing.T) {
	e, _, _ := newMealPlanTestServer(t)

	rec := doRequest(e, http.MethodPut, "/meal-plans/not-a-uuid", `{"name":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "id must be a valid UUID", decodeEnvelope(t, rec).Error)
}

func TestMealPlanHandler_DeleteForeign(t *testing.T) {
	e, mealPlanUC, userID := newMealPlanTestServer(t)
	id := uuid.New()

	mealPlanUC.EXPECT().Delete(mock.Anything, userID, id).Return(domainerrors.ErrMealPlanNotFound).Once()

	rec := doRequest(e, http.MethodDelete, "/meal-plans/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "MEAL_PLAN_NOT_FOUND", decodeEnvelope(t, rec).Code)
}
