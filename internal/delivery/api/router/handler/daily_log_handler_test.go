package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/nutrition"
	mockUsecase "macrolog/internal/mocks/usecase"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var dailyLogTestNow = time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

func newDailyLogTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockDailyLogUsecase, uuid.UUID) {
	dailyLogUC := mockUsecase.NewMockDailyLogUsecase(t)
	h := NewDailyLogHandler(DailyLogHandlerParams{
		DailyLogUC: dailyLogUC,
		Calendar:   fixedCalendar(dailyLogTestNow),
		Logger:     newDiscardLogger(),
	})
	userID := uuid.New()
	auth := asUser(userID)

	e := newTestEcho()
	e.GET("/daily-log", h.GetDailyLog, auth)
	e.GET("/daily-log/history", h.GetHistory, auth)
	e.POST("/daily-log", h.PostDailyLog, auth)
	e.PUT("/daily-log", h.UpdateDailyLog, auth)
	e.DELETE("/daily-log", h.DeleteEntry, auth)
	e.DELETE("/daily-log/entries/:id", h.DeleteEntry, auth)

	return e, dailyLogUC, userID
}

func TestDailyLogHandler_SummaryDefaultsToToday(t *testing.T) {
	e, dailyLogUC, userID := newDailyLogTestServer(t)

	dailyLogUC.EXPECT().
		GetSummary(mock.Anything, userID, "2024-05-20").
		Return(&usecase.DailySummary{
			Date:    "2024-05-20",
			Entries: []*entity.FoodEntry{},
			Meals:   []nutrition.MealTotal{},
		}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/daily-log", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Nil(t, data["log"])
	assert.Equal(t, []any{}, data["entries"])
	assert.Equal(t, map[string]any{"calories": 0.0, "protein": 0.0, "carbs": 0.0, "fat": 0.0}, data["totals"])
	assert.NotContains(t, data, "targets")
}

func TestDailyLogHandler_SummaryForDate(t *testing.T) {
	e, dailyLogUC, userID := newDailyLogTestServer(t)
	remaining := -150.0

	dailyLogUC.EXPECT().
		GetSummary(mock.Anything, userID, "2024-01-15").
		Return(&usecase.DailySummary{
			Date:      "2024-01-15",
			Log:       &entity.DailyLog{ID: uuid.New(), UserID: userID, LogDate: "2024-01-15"},
			Entries:   []*entity.FoodEntry{{FoodName: "rice", Nutrients: entity.Nutrients{Calories: 2150}}},
			Totals:    entity.Nutrients{Calories: 2150},
			Targets:   &nutrition.Targets{CalorieGoal: 2000},
			Remaining: &remaining,
			Status:    nutrition.StatusWarning,
		}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/daily-log?date=2024-01-15", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"remaining":-150`)
	assert.Contains(t, body, `"status":"warning"`)
	assert.Contains(t, body, `"food_name":"rice"`)
}

func TestDailyLogHandler_HistoryViaAction(t *testing.T) {
	e, dailyLogUC, userID := newDailyLogTestServer(t)

	dailyLogUC.EXPECT().
		History(mock.Anything, userID, usecase.HistoryInput{Today: "2024-05-20", Days: 7, Target: ptr(1800.0)}).
		Return(&usecase.HistoryOutput{
			From: "2024-05-14",
			To:   "2024-05-20",
			Days: []usecase.HistoryDay{{Date: "2024-05-20", TotalCalories: 1700}},
			Stats: nutrition.PeriodStats{
				Target:        1800,
				DaysInWindow:  7,
				DaysWithData:  1,
				CurrentStreak: 1,
			},
		}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/daily-log?action=history&days=7&target=1800", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data HistoryResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, "2024-05-14", data.From)
	require.Len(t, data.Days, 1)
	assert.Equal(t, 1700.0, data.Days[0].TotalCalories)
	assert.Equal(t, 1, data.Stats.CurrentStreak)
}

func TestDailyLogHandler_HistoryBadQuery(t *testing.T) {
	e, _, _ := newDailyLogTestServer(t)

	for target, message := range map[string]string{
		"/daily-log/history?days=ten":      "days must be an integer",
		"/daily-log/history?target=lots":   "target must be a number",
		"/daily-log?action=chart":          "action must be history when set",
		"/daily-log/history?tz=Not/A_Zone": `unknown timezone "Not/A_Zone"`,
	} {
		rec := doRequest(e, http.MethodGet, target, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, message, decodeEnvelope(t, rec).Error, target)
	}
}

func TestDailyLogHandler_HistoryWindowTooLarge(t *testing.T) {
	e, dailyLogUC, userID := newDailyLogTestServer(t)

	dailyLogUC.EXPECT().
		History(mock.Anything, userID, usecase.HistoryInput{Today: "2024-05-20", Days: 90}).
		Return(nil, domainerrors.NewValidationError("days must be between 1 and 60")).
		Once()

	rec := doRequest(e, http.MethodGet, "/daily-log/history?days=90", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "days must be between 1 and 60", decodeEnvelope(t, rec).Error)
}

func TestDailyLogHandler_CreateLog(t *testing.T) {
	e, dailyLogUC, userID := newDailyLogTestServer(t)
	dailyLog := &entity.DailyLog{ID: uuid.New(), UserID: userID, LogDate: "2024-05-19"}

	dailyLogUC.EXPECT().CreateLog(mock.Anything, userID, "2024-05-19").Return(dailyLog, nil).Once()

	rec := doRequest(e, http.MethodPost, "/daily-log", `{"action":"create","date":"2024-05-19"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"log_date":"2024-05-19"`)
}

func TestDailyLogHandler_AddFoodPer100g(t *testing.T) {
	e, dailyLogUC, userID := newDailyLogTestServer(t)
	mealPlanID := uuid.New()

	dailyLogUC.EXPECT().
		AddFood(mock.Anything, userID, mock.MatchedBy(func(in usecase.AddFoodInput) bool {
			return in.Date == "2024-05-20" &&
				in.MealPlanID != nil && *in.MealPlanID == mealPlanID &&
				in.QuantityGrams == 250 &&
				in.Per100g != nil && in.Per100g.Calories == 130 && in.Per100g.Protein == 2.7 &&
				in.Calories == nil && in.CustomFoodID == nil
		})).
		Return(&entity.FoodEntry{
			ID:            uuid.New(),
			UserID:        userID,
			MealPlanID:    &mealPlanID,
			FoodName:      "rice",
			QuantityGrams: 250,
			Nutrients:     entity.Nutrients{Calories: 325, Protein: 6.75},
		}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/daily-log",
		`{"action":"addFood","meal_plan_id":"`+mealPlanID.String()+`","food_name":"rice","quantity_grams":250,"calories_per_100g":130,"protein_per_100g":2.7}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"calories":325`)
}

func TestDailyLogHandler_AddFoodValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "missing quantity", body: `{"action":"addFood","food_name":"rice","calories":100}`, message: "quantity_grams is required"},
		{name: "negative calories", body: `{"action":"addFood","quantity_grams":10,"calories":-5}`, message: "calories must be greater than or equal to 0"},
		{name: "bad meal plan id", body: `{"action":"addFood","quantity_grams":10,"meal_plan_id":"abc"}`, message: "meal_plan_id must be a valid UUID"},
		{name: "bad date", body: `{"action":"create","date":"20-05-2024"}`, message: "date must be a date in YYYY-MM-DD format"},
		{name: "unknown action", body: `{"action":"remove"}`, message: "action must be one of: create, addFood"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newDailyLogTestServer(t)

			rec := doRequest(e, http.MethodPost, "/daily-log", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decodeEnvelope(t, rec).Error)
		})
	}
}

func TestDailyLogHandler_UpdateLog(t *testing.T) {
	e, dailyLogUC, userID := newDailyLogTestServer(t)

	dailyLogUC.EXPECT().
		UpdateLog(mock.Anything, userID, usecase.UpdateDailyLogInput{Date: "2024-05-20", WeightKg: ptr(71.5), Notes: ptr("felt good")}).
		Return(&entity.DailyLog{UserID: userID, LogDate: "2024-05-20", WeightKg: ptr(71.5), Notes: ptr("felt good")}, nil).
		Once()

	rec := doRequest(e, http.MethodPut, "/daily-log", `{"weight_kg":71.5,"notes":"felt good"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"weight_kg":71.5`)
}

func TestDailyLogHandler_DeleteEntry(t *testing.T) {
	entryID := uuid.New()

	for _, target := range []string{
		"/daily-log/entries/" + entryID.String(),
		"/daily-log?foodEntryId=" + entryID.String(),
	} {
		t.Run(target, func(t *testing.T) {
			e, dailyLogUC, userID := newDailyLogTestServer(t)
			dailyLogUC.EXPECT().DeleteEntry(mock.Anything, userID, entryID).Return(nil).Once()

			rec := doRequest(e, http.MethodDelete, target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"success":true}`, string(decodeEnvelope(t, rec).Data))
		})
	}
}

func TestDailyLogHandler_DeleteForeignEntry(t *testing.T) {
	e, dailyLogUC, userID := newDailyLogTestServer(t)
	entryID := uuid.New()

	dailyLogUC.EXPECT().DeleteEntry(mock.Anything, userID, entryID).Return(domainerrors.ErrFoodEntryNotFound).Once()

	rec := doRequest(e, http.MethodDelete, "/daily-log/entries/"+entryID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FOOD_ENTRY_NOT_FOUND", decodeEnvelope(t, rec).Code)
}

func TestDailyLogHandler_DeleteWithoutID(t *testing.T) {
	e, _, _ := newDailyLogTestServer(t)

	rec := doRequest(e, http.MethodDelete, "/daily-log", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "food entry id is required", decodeEnvelope(t, rec).Error)
}
