package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyLogModel mirrors the 'daily_logs' table, unique on (user_id, log_date).
type DailyLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_logs_user_date,priority:1"`
	LogDate   string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_logs_user_date,priority:2"`
	WeightKg  *float64
	Notes     *string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Entries []FoodEntryModel `gorm:"foreignKey:DailyLogID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DailyLogModel) TableName() string {
	return "daily_logs"
}

// FoodEntryModel mirrors the 'food_entries' table. meal_plan_id is kept as a plain
// column so entries outlive the meal plan they were logged against.
type FoodEntryModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	DailyLogID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	MealPlanID    *uuid.UUID `gorm:"type:uuid;index"`
	FoodName      string     `gorm:"type:varchar(255);not null"`
	QuantityGrams float64    `gorm:"not null;check:quantity_grams >= 0"`
	Calories      float64    `gorm:"not null;default:0;check:calories >= 0"`
	Protein       float64    `gorm:"not null;default:0;check:protein >= 0"`
	Carbs         float64    `gorm:"not null;default:0;check:carbs >= 0"`
	Fat           float64    `gorm:"not null;default:0;check:fat >= 0"`
	CreatedAt     time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (FoodEntryModel) TableName() string {
	return "food_entries"
}
