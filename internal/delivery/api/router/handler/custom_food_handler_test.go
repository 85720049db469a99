package handler

import (
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

func newCustomFoodTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockCustomFoodUsecase, uuid.UUID) {
	customFoodUC := mockUsecase.NewMockCustomFoodUsecase(t)
	h := NewCustomFoodHandler(CustomFoodHandlerParams{CustomFoodUC: customFoodUC, Logger: newDiscardLogger()})
	userID := uuid.New()
	auth := asUser(userID)

	e := newTestEcho()
	e.GET("/custom-foods", h.SearchCustomFoods, auth)
	e.POST("/custom-foods", h.UpsertCustomFood, auth)
	e.PUT("/custom-foods/:id", h.UpdateCustomFood, auth)
	e.DELETE("/custom-foods/:id", h.DeleteCustomFood, auth)

	return e, customFoodUC, userID
}

func TestCustomFoodHandler_Search(t *testing.T) {
	e, customFoodUC, userID := newCustomFoodTestServer(t)

	customFoodUC.EXPECT().
		Search(mock.Anything, userID, "bar").
		Return([]*entity.CustomFood{{ID: uuid.New(), UserID: userID, FoodName: "Protein Bar", Per100g: entity.Nutrients{Calories: 380}}}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/custom-foods?search=bar", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"calories_per_100g":380`)
}

func TestCustomFoodHandler_UpsertStatus(t *testing.T) {
	tests := []struct {
		name    string
		created bool
		status  int
	}{
		{name: "created", created: true, status: http.StatusCreated},
		{name: "overwritten", created: false, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, customFoodUC, userID := newCustomFoodTestServer(t)

			customFoodUC.EXPECT().
				Upsert(mock.Anything, userID, usecase.UpsertCustomFoodInput{
					FoodName: "Protein Bar",
					Per100g:  entity.Nutrients{Calories: 380, Protein: 30},
					Brand:    ptr("Acme"),
				}).
				Return(&entity.CustomFood{ID: uuid.New(), UserID: userID, FoodName: "Protein Bar"}, tt.created, nil).
				Once()

			rec := doRequest(e, http.MethodPost, "/custom-foods",
				`{"food_name":"Protein Bar","calories_per_100g":380,"protein_per_100g":30,"brand":"Acme"}`)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestCustomFoodHandler_UpsertRequiresCalories(t *testing.T) {
	e, _, _ := newCustomFoodTestServer(t)

	rec := doRequest(e, http.MethodPost, "/custom-foods", `{"food_name":"Protein Bar"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "calories_per_100g is required", decodeEnvelope(t, rec).Error)
}

func TestCustomFoodHandler_UpdateConflict(t *testing.T) {
	e, customFoodUC, userID := newCustomFoodTestServer(t)
	id := uuid.New()

	customFoodUC.EXPECT().
		Update(mock.Anything, userID, id, usecase.UpdateCustomFoodInput{FoodName: ptr("Granola")}).
		Return(nil, domainerrors.ErrCustomFoodConflict).
		Once()

	rec := doRequest(e, http.MethodPut, "/custom-foods/"+id.String(), `{"food_name":"Granola"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CUSTOM_FOOD_CONFLICT", decodeEnvelope(t, rec).Code)
}

func TestCustomFoodHandler_Delete(t *testing.T) {
	e, customFoodUC, userID := newCustomFoodTestServer(t)
	id := uuid.New()

	customFoodUC.EXPECT().Delete(mock.Anything, userID, id).Return(nil).Once()

	rec := doRequest(e, http.MethodDelete, "/custom-foods/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, string(decodeEnvelope(t, rec).Data))
}
