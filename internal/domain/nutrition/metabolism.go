// Package nutrition holds the pure calculations behind the daily summary and
// the history view: metabolic targets, totals, deficit status and streaks.
package nutrition

import "macrolog/internal/domain/entity"

// DefaultDeficit is subtracted from TDEE when the profile has no explicit calorie goal.
const DefaultDeficit = 500

// DefaultActivityMultiplier applies to unknown activity levels.
const DefaultActivityMultiplier = 1.55

var activityMultipliers = map[entity.ActivityLevel]float64{
	entity.ActivitySedentary:  1.2,
	entity.ActivityLight:      1.375,
	entity.ActivityModerate:   1.55,
	entity.ActivityActive:     1.725,
	entity.ActivityVeryActive: 1.9,
}

// CalculateBMR returns the Mifflin-St Jeor basal metabolic rate in kcal/day.
func CalculateBMR(weightKg, heightCm float64, age int, sex entity.Sex) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == entity.SexFemale {
		return base - 161
	}

	return base + 5
}

// ActivityMultiplier returns the TDEE factor for the level.
func ActivityMultiplier(level entity.ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}

	return DefaultActivityMultiplier
}

// CalculateTDEE returns total daily energy expenditure.
func CalculateTDEE(bmr float64, level entity.ActivityLevel) float64 {
	return bmr * ActivityMultiplier(level)
}

// DefaultCalorieGoal is TDEE minus the default deficit.
func DefaultCalorieGoal(tdee float64) float64 {
	return tdee - DefaultDeficit
}

// ValidActivityLevel reports whether level is one of the known tiers.
func ValidActivityLevel(level entity.ActivityLevel) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// Targets are the metabolic numbers derived from a profile.
type Targets struct {
	BMR         float64  `json:"bmr"`
	TDEE        float64  `json:"tdee"`
	CalorieGoal float64  `json:"calorie_goal"`
	GoalIsSet   bool     `json:"goal_is_set"`
	ProteinGoal *float64 `json:"protein_goal,omitempty"`
	CarbsGoal   *float64 `json:"carbs_goal,omitempty"`
	FatGoal     *float64 `json:"fat_goal,omitempty"`
}

// ProfileTargets derives BMR, TDEE and the effective calorie goal from a profile.
func ProfileTargets(p *entity.Profile) Targets {
	bmr := CalculateBMR(p.WeightKg, p.HeightCm, p.Age, p.Sex)
	tdee := CalculateTDEE(bmr, p.ActivityLevel)

	t := Targets{
		BMR:         bmr,
		TDEE:        tdee,
		CalorieGoal: DefaultCalorieGoal(tdee),
		ProteinGoal: p.ProteinGoal,
		CarbsGoal:   p.CarbsGoal,
		FatGoal:     p.FatGoal,
	}
	if p.CalorieGoal != nil {
		t.CalorieGoal = *p.CalorieGoal
		t.GoalIsSet = true
	}

	return t
}
