package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealPlan is a named meal slot with a calorie target. While planned foods exist
// for the plan, TargetCalories is their calorie sum.
type MealPlan struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	TargetCalories float64   `json:"target_calories"`
	MealOrder      int       `json:"meal_order"`
	IsDefault      bool      `json:"is_default"`
	CreatedAt      time.Time `json:"created_at"`
}

// PlannedFood is a prescribed food item inside a meal plan.
type PlannedFood struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	MealPlanID    uuid.UUID `json:"meal_plan_id"`
	FoodName      string    `json:"food_name"`
	QuantityGrams float64   `json:"quantity_grams"`
	Nutrients
	CreatedAt time.Time `json:"created_at"`
}

// DefaultMealPlan describes one of the seeded meal slots.
type DefaultMealPlan struct {
	Name           string
	TargetCalories float64
	MealOrder      int
}

// DefaultMealPlans are created by the createDefaults action.
var DefaultMealPlans = []DefaultMealPlan{
	{Name: "Breakfast", TargetCalories: 400, MealOrder: 1},
	{Name: "Lunch", TargetCalories: 600, MealOrder: 2},
	{Name: "Snack", TargetCalories: 200, MealOrder: 3},
	{Name: "Dinner", TargetCalories: 500, MealOrder: 4},
}
