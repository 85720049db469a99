package nutrition

import (
	"testing"

	"macrolog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(mealPlanID *uuid.UUID, kcal, protein float64) *entity.FoodEntry {
	return &entity.FoodEntry{
		ID:         uuid.New(),
		MealPlanID: mealPlanID,
		Nutrients:  entity.Nutrients{Calories: kcal, Protein: protein},
	}
}

func TestSumEntries(t *testing.T) {
	entries := []*entity.FoodEntry{
		entry(nil, 120.5, 10),
		entry(nil, 300, 2.5),
		entry(nil, 79.5, 0),
	}

	total := SumEntries(entries)

	assert.Equal(t, 500.0, total.Calories)
	assert.Equal(t, 12.5, total.Protein)
	assert.Zero(t, total.Fat)
}

func TestSumEntries_Empty(t *testing.T) {
	assert.Equal(t, entity.Nutrients{}, SumEntries(nil))
}

func TestSumPlanned(t *testing.T) {
	foods := []*entity.PlannedFood{
		{Nutrients: entity.Nutrients{Calories: 100}},
		{Nutrients: entity.Nutrients{Calories: 200}},
		{Nutrients: entity.Nutrients{Calories: 50}},
	}

	assert.Equal(t, 350.0, SumPlanned(foods).Calories)
}

func TestNutrientsScale(t *testing.T) {
	per100g := entity.Nutrients{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3}

	scaled := per100g.Scale(250)

	assert.InDelta(t, 325.0, scaled.Calories, 1e-9)
	assert.InDelta(t, 6.75, scaled.Protein, 1e-9)
	assert.InDelta(t, 70.0, scaled.Carbs, 1e-9)
	assert.InDelta(t, 0.75, scaled.Fat, 1e-9)
}

func TestGroupByMeal(t *testing.T) {
	breakfast := &entity.MealPlan{ID: uuid.New(), Name: "Breakfast", TargetCalories: 400, MealOrder: 1}
	lunch := &entity.MealPlan{ID: uuid.New(), Name: "Lunch", TargetCalories: 600, MealOrder: 2}
	deleted := uuid.New()

	entries := []*entity.FoodEntry{
		entry(&breakfast.ID, 250, 10),
		entry(&breakfast.ID, 300, 5),
		entry(&lunch.ID, 450, 30),
		entry(nil, 100, 0),
		entry(&deleted, 50, 0),
	}

	meals := GroupByMeal([]*entity.MealPlan{breakfast, lunch}, entries)

	require.Len(t, meals, 3)

	assert.Equal(t, "Breakfast", meals[0].Name)
	assert.Equal(t, 550.0, meals[0].Totals.Calories)
	assert.Equal(t, -150.0, meals[0].Remaining)
	assert.Equal(t, StatusWarning, meals[0].Status)
	assert.Equal(t, 2, meals[0].EntryCount)

	assert.Equal(t, 450.0, meals[1].Totals.Calories)
	assert.Equal(t, StatusOnTrack, meals[1].Status)

	assert.Equal(t, UnassignedMealName, meals[2].Name)
	assert.Nil(t, meals[2].MealPlanID)
	assert.Equal(t, 150.0, meals[2].Totals.Calories)
	assert.Equal(t, StatusDanger, meals[2].Status)
}

func TestGroupByMeal_NoUnassignedBucket(t *testing.T) {
	plan := &entity.MealPlan{ID: uuid.New(), Name: "Dinner", TargetCalories: 500}

	meals := GroupByMeal([]*entity.MealPlan{plan}, nil)

	require.Len(t, meals, 1)
	assert.Zero(t, meals[0].Totals.Calories)
	assert.Equal(t, 500.0, meals[0].Remaining)
}

func TestSumMealTargets(t *testing.T) {
	plans := []*entity.MealPlan{
		{TargetCalories: 400},
		{TargetCalories: 600},
		{TargetCalories: 200},
		{TargetCalories: 500},
	}

	assert.Equal(t, 1700.0, SumMealTargets(plans))
}
