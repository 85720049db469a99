package model

import (
	"time"

	"github.com/google/uuid"
)

// MealPlanModel mirrors the 'meal_plans' table.
type MealPlanModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(100);not null"`
	TargetCalories float64   `gorm:"not null;default:0;check:target_calories >= 0"`
	MealOrder      int       `gorm:"not null"`
	IsDefault      bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time

	PlannedFoods []PlannedFoodModel `gorm:"foreignKey:MealPlanID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// PlannedFoodModel mirrors the 'planned_foods' table.
type PlannedFoodModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	MealPlanID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FoodName      string    `gorm:"type:varchar(255);not null"`
	QuantityGrams float64   `gorm:"not null;check:quantity_grams >= 0"`
	Calories      float64   `gorm:"not null;default:0;check:calories >= 0"`
	Protein       float64   `gorm:"not null;default:0;check:protein >= 0"`
	Carbs         float64   `gorm:"not null;default:0;check:carbs >= 0"`
	Fat           float64   `gorm:"not null;default:0;check:fat >= 0"`
	CreatedAt     time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PlannedFoodModel) TableName() string {
	return "planned_foods"
}
