package handler

import (
	"log/slog"
	"net/http"

	"macrolog/internal/delivery/api/response"
	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/nutrition"
	"macrolog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Daily log actions accepted by POST /daily-log and GET /daily-log.
const (
	ActionCreate  = "create"
	ActionAddFood = "addFood"
	ActionHistory = "history"
)

// DailyLogHandlerParams holds dependencies for DailyLogHandler, injected by Fx.
type DailyLogHandlerParams struct {
	fx.In

	DailyLogUC usecase.DailyLogUsecase
	Calendar   *Calendar
	Logger     *slog.Logger
}

// DailyLogHandler serves the day summary, food entries and history.
type DailyLogHandler struct {
	dailyLogUC usecase.DailyLogUsecase
	calendar   *Calendar
	logger     *slog.Logger
}

// NewDailyLogHandler is the constructor for DailyLogHandler
func NewDailyLogHandler(params DailyLogHandlerParams) *DailyLogHandler {
	return &DailyLogHandler{
		dailyLogUC: params.DailyLogUC,
		calendar:   params.Calendar,
		logger:     params.Logger,
	}
}

// DailyLogActionRequest is the body of POST /daily-log. Action selects which fields apply.
//
// For addFood the nutrients come from custom_food_id, else the *_per_100g
// fields scaled by quantity_grams, else the explicit totals.
type DailyLogActionRequest struct {
	Action string `json:"action" validate:"required,oneof=create addFood"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`

	MealPlanID    string   `json:"meal_plan_id" validate:"omitempty,uuid"`
	FoodName      string   `json:"food_name" validate:"max=200"`
	QuantityGrams *float64 `json:"quantity_grams" validate:"omitempty,gte=0"`

	Calories *float64 `json:"calories" validate:"omitempty,gte=0"`
	Protein  *float64 `json:"protein" validate:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs" validate:"omitempty,gte=0"`
	Fat      *float64 `json:"fat" validate:"omitempty,gte=0"`

	CaloriesPer100g *float64 `json:"calories_per_100g" validate:"omitempty,gte=0"`
	ProteinPer100g  *float64 `json:"protein_per_100g" validate:"omitempty,gte=0"`
	CarbsPer100g    *float64 `json:"carbs_per_100g" validate:"omitempty,gte=0"`
	FatPer100g      *float64 `json:"fat_per_100g" validate:"omitempty,gte=0"`

	CustomFoodID string `json:"custom_food_id" validate:"omitempty,uuid"`
}

// UpdateDailyLogRequest is the body of PUT /daily-log.
type UpdateDailyLogRequest struct {
	Date     string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	WeightKg *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	Notes    *string  `json:"notes" validate:"omitempty,max=2000"`
}

// DailySummaryResponse is one day with totals per meal and against the calorie goal.
type DailySummaryResponse struct {
	Date      string                `json:"date"`
	Log       *entity.DailyLog      `json:"log"`
	Entries   []*entity.FoodEntry   `json:"entries"`
	Totals    entity.Nutrients      `json:"totals"`
	Meals     []nutrition.MealTotal `json:"meals"`
	Targets   *nutrition.Targets    `json:"targets,omitempty"`
	Remaining *float64              `json:"remaining,omitempty"`
	Status    string                `json:"status,omitempty"`
}

// HistoryDayResponse is one logged day.
type HistoryDayResponse struct {
	Date          string              `json:"date"`
	TotalCalories float64             `json:"total_calories"`
	Entries       []*entity.FoodEntry `json:"entries"`
}

// HistoryResponse lists logged days newest first with stats over the whole window.
type HistoryResponse struct {
	From  string                `json:"from"`
	To    string                `json:"to"`
	Days  []HistoryDayResponse  `json:"days"`
	Stats nutrition.PeriodStats `json:"stats"`
}

// GetDailyLog handles GET /daily-log. ?action=history returns the history instead of a day.
func (h *DailyLogHandler) GetDailyLog(c echo.Context) error {
	switch action := c.QueryParam("action"); action {
	case "":
	case ActionHistory:
		return h.GetHistory(c)
	default:
		return domainerrors.NewValidationError("action must be history when set")
	}

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	date, err := h.calendar.DateOrToday(c, c.QueryParam("date"))
	if err != nil {
		return err
	}

	summary, err := h.dailyLogUC.GetSummary(c.Request().Context(), userID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, DailySummaryResponse{
		Date:      summary.Date,
		Log:       summary.Log,
		Entries:   summary.Entries,
		Totals:    summary.Totals,
		Meals:     summary.Meals,
		Targets:   summary.Targets,
		Remaining: summary.Remaining,
		Status:    summary.Status,
	})
}

// GetHistory handles GET /daily-log/history.
func (h *DailyLogHandler) GetHistory(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	days, err := optionalInt("days", c.QueryParam("days"))
	if err != nil {
		return err
	}
	target, err := optionalFloat("target", c.QueryParam("target"))
	if err != nil {
		return err
	}
	today, err := h.calendar.Today(c)
	if err != nil {
		return err
	}

	out, err := h.dailyLogUC.History(c.Request().Context(), userID, usecase.HistoryInput{
		Today:  today,
		Days:   days,
		Target: target,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := HistoryResponse{
		From:  out.From,
		To:    out.To,
		Days:  make([]HistoryDayResponse, 0, len(out.Days)),
		Stats: out.Stats,
	}
	for _, d := range out.Days {
		resp.Days = append(resp.Days, HistoryDayResponse{
			Date:          d.Date,
			TotalCalories: d.TotalCalories,
			Entries:       d.Entries,
		})
	}

	return response.Success(c, http.StatusOK, resp)
}

// PostDailyLog handles POST /daily-log for the create and addFood actions.
func (h *DailyLogHandler) PostDailyLog(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req DailyLogActionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	date, err := h.calendar.DateOrToday(c, req.Date)
	if err != nil {
		return err
	}

	switch req.Action {
	case ActionCreate:
		dailyLog, err := h.dailyLogUC.CreateLog(c.Request().Context(), userID, date)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, dailyLog)
	case ActionAddFood:
		input, err := req.addFoodInput(date)
		if err != nil {
			return err
		}

		entry, err := h.dailyLogUC.AddFood(c.Request().Context(), userID, input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusCreated, entry)
	default:
		return domainerrors.NewValidationError("action must be one of: create, addFood")
	}
}

func (req *DailyLogActionRequest) addFoodInput(date string) (usecase.AddFoodInput, error) {
	if req.QuantityGrams == nil {
		return usecase.AddFoodInput{}, domainerrors.NewValidationError("quantity_grams is required")
	}

	mealPlanID, err := optionalUUID("meal_plan_id", req.MealPlanID)
	if err != nil {
		return usecase.AddFoodInput{}, err
	}
	customFoodID, err := optionalUUID("custom_food_id", req.CustomFoodID)
	if err != nil {
		return usecase.AddFoodInput{}, err
	}

	input := usecase.AddFoodInput{
		Date:          date,
		MealPlanID:    mealPlanID,
		FoodName:      req.FoodName,
		QuantityGrams: *req.QuantityGrams,
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbs:         req.Carbs,
		Fat:           req.Fat,
		CustomFoodID:  customFoodID,
	}
	if req.CaloriesPer100g != nil {
		input.Per100g = &entity.Nutrients{
			Calories: *req.CaloriesPer100g,
			Protein:  valueOrZero(req.ProteinPer100g),
			Carbs:    valueOrZero(req.CarbsPer100g),
			Fat:      valueOrZero(req.FatPer100g),
		}
	}

	return input, nil
}

// UpdateDailyLog handles PUT /daily-log.
func (h *DailyLogHandler) UpdateDailyLog(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateDailyLogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	date, err := h.calendar.DateOrToday(c, req.Date)
	if err != nil {
		return err
	}

	dailyLog, err := h.dailyLogUC.UpdateLog(c.Request().Context(), userID, usecase.UpdateDailyLogInput{
		Date:     date,
		WeightKg: req.WeightKg,
		Notes:    req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dailyLog)
}

// DeleteEntry handles DELETE /daily-log/entries/:id and the legacy
// DELETE /daily-log?foodEntryId= form.
func (h *DailyLogHandler) DeleteEntry(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	raw := c.Param("id")
	if raw == "" {
		raw = c.QueryParam("foodEntryId")
	}
	if raw == "" {
		return domainerrors.NewValidationError("food entry id is required")
	}
	entryID, err := optionalUUID("id", raw)
	if err != nil {
		return err
	}

	if err := h.dailyLogUC.DeleteEntry(c.Request().Context(), userID, *entryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, DeletedResponse{Success: true})
}

func valueOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}

	return *p
}
