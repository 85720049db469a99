package nutrition

import (
	"macrolog/internal/domain/entity"

	"github.com/google/uuid"
)

// SumEntries adds up the nutrients of the entries.
func SumEntries(entries []*entity.FoodEntry) entity.Nutrients {
	var total entity.Nutrients
	for _, e := range entries {
		total = total.Add(e.Nutrients)
	}

	return total
}

// SumPlanned adds up the nutrients of planned foods.
func SumPlanned(foods []*entity.PlannedFood) entity.Nutrients {
	var total entity.Nutrients
	for _, f := range foods {
		total = total.Add(f.Nutrients)
	}

	return total
}

// MealTotal is the consumption against one meal plan.
type MealTotal struct {
	MealPlanID     *uuid.UUID       `json:"meal_plan_id"`
	Name           string           `json:"name"`
	MealOrder      int              `json:"meal_order"`
	TargetCalories float64          `json:"target_calories"`
	Totals         entity.Nutrients `json:"totals"`
	Remaining      float64          `json:"remaining"`
	Status         string           `json:"status"`
	EntryCount     int              `json:"entry_count"`
}

// UnassignedMealName labels entries without a meal plan, or whose plan is gone.
const UnassignedMealName = "Unassigned"

// GroupByMeal returns one MealTotal per meal plan in plan order, followed by an
// unassigned bucket when any entry has no (existing) meal plan.
func GroupByMeal(plans []*entity.MealPlan, entries []*entity.FoodEntry) []MealTotal {
	index := make(map[uuid.UUID]int, len(plans))
	meals := make([]MealTotal, 0, len(plans)+1)

	for _, p := range plans {
		id := p.ID
		index[id] = len(meals)
		meals = append(meals, MealTotal{
			MealPlanID:     &id,
			Name:           p.Name,
			MealOrder:      p.MealOrder,
			TargetCalories: p.TargetCalories,
		})
	}

	var unassigned *MealTotal
	for _, e := range entries {
		if e.MealPlanID != nil {
			if i, ok := index[*e.MealPlanID]; ok {
				meals[i].Totals = meals[i].Totals.Add(e.Nutrients)
				meals[i].EntryCount++
				continue
			}
		}
		if unassigned == nil {
			unassigned = &MealTotal{Name: UnassignedMealName}
		}
		unassigned.Totals = unassigned.Totals.Add(e.Nutrients)
		unassigned.EntryCount++
	}

	if unassigned != nil {
		meals = append(meals, *unassigned)
	}

	for i := range meals {
		meals[i].Remaining = meals[i].TargetCalories - meals[i].Totals.Calories
		meals[i].Status = DeficitStatus(meals[i].Remaining)
	}

	return meals
}

// SumMealTargets is the fallback daily target for the history view.
func SumMealTargets(plans []*entity.MealPlan) float64 {
	var sum float64
	for _, p := range plans {
		sum += p.TargetCalories
	}

	return sum
}
