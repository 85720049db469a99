package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomFoodModel mirrors the 'custom_foods' table. The case-insensitive
// (user_id, lower(food_name)) unique index is created by the migration.
type CustomFoodModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FoodName  string    `gorm:"type:varchar(255);not null"`
	Calories  float64   `gorm:"not null;default:0;check:calories >= 0"`
	Protein   float64   `gorm:"not null;default:0;check:protein >= 0"`
	Carbs     float64   `gorm:"not null;default:0;check:carbs >= 0"`
	Fat       float64   `gorm:"not null;default:0;check:fat >= 0"`
	Brand     *string   `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomFoodModel) TableName() string {
	return "custom_foods"
}

// All lists every model for AutoMigrate, parents first.
func All() []any {
	return []any{
		&UserModel{},
		&ProfileModel{},
		&DailyLogModel{},
		&FoodEntryModel{},
		&MealPlanModel{},
		&PlannedFoodModel{},
		&CustomFoodModel{},
	}
}
