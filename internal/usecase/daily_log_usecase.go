package usecase

import (
	"context"

	"macrolog/internal/domain/entity"
	"macrolog/internal/domain/nutrition"

	"github.com/google/uuid"
)

// AddFoodInput describes one consumed food. Nutrients come from exactly one
// source, checked in this order: CustomFoodID, Per100g, then the explicit totals.
type AddFoodInput struct {
	Date          string
	MealPlanID    *uuid.UUID
	FoodName      string
	QuantityGrams float64

	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64

	Per100g      *entity.Nutrients
	CustomFoodID *uuid.UUID
}

// UpdateDailyLogInput sets weight and notes for a date. Nil keeps the stored value.
type UpdateDailyLogInput struct {
	Date     string
	WeightKg *float64
	Notes    *string
}

// HistoryInput selects a window of Days days ending at Today, inclusive.
// Target overrides the daily target; otherwise the sum of meal-plan targets is used.
type HistoryInput struct {
	Today  string
	Days   int
	Target *float64
}

// DailySummary is everything the dashboard needs for one day.
type DailySummary struct {
	Date    string
	Log     *entity.DailyLog
	Entries []*entity.FoodEntry
	Totals  entity.Nutrients
	Meals   []nutrition.MealTotal

	// Set only when the user has a profile.
	Targets   *nutrition.Targets
	Remaining *float64
	Status    string
}

// HistoryDay is one logged day in the window.
type HistoryDay struct {
	Date          string
	TotalCalories float64
	Entries       []*entity.FoodEntry
}

// HistoryOutput lists logged days newest first plus statistics over the whole window.
type HistoryOutput struct {
	From  string
	To    string
	Days  []HistoryDay
	Stats nutrition.PeriodStats
}

// DailyLogUsecase defines daily log, food entry and history operations.
type DailyLogUsecase interface {
	GetSummary(ctx context.Context, userID uuid.UUID, date string) (*DailySummary, error)

	// CreateLog returns the existing log for the date when there is one.
	CreateLog(ctx context.Context, userID uuid.UUID, date string) (*entity.DailyLog, error)

	// AddFood creates the day's log when needed. It never changes meal-plan targets.
	AddFood(ctx context.Context, userID uuid.UUID, input AddFoodInput) (*entity.FoodEntry, error)

	UpdateLog(ctx context.Context, userID uuid.UUID, input UpdateDailyLogInput) (*entity.DailyLog, error)
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
	History(ctx context.Context, userID uuid.UUID, input HistoryInput) (*HistoryOutput, error)
}
