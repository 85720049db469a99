package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used for log dates.
const DateLayout = "2006-01-02"

// DailyLog is the per-day container for food entries. Unique per (UserID, LogDate).
type DailyLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	LogDate   string    `json:"log_date"` // YYYY-MM-DD in the user's calendar
	WeightKg  *float64  `json:"weight_kg"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FoodEntry is a consumed food. Entries are never updated in place.
type FoodEntry struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	DailyLogID    uuid.UUID  `json:"daily_log_id"`
	MealPlanID    *uuid.UUID `json:"meal_plan_id"`
	FoodName      string     `json:"food_name"`
	QuantityGrams float64    `json:"quantity_grams"`
	Nutrients
	CreatedAt time.Time `json:"created_at"`
}
