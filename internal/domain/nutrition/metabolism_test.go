package nutrition

import (
	"testing"

	"macrolog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBMR(t *testing.T) {
	assert.InDelta(t, 1642.5, CalculateBMR(70, 170, 25, entity.SexMale), 1e-9)
	assert.InDelta(t, 1289.0, CalculateBMR(60, 160, 30, entity.SexFemale), 1e-9)
}

func TestCalculateTDEE(t *testing.T) {
	tests := []struct {
		level    entity.ActivityLevel
		expected float64
	}{
		{entity.ActivitySedentary, 1971.0},
		{entity.ActivityLight, 1642.5 * 1.375},
		{entity.ActivityModerate, 2545.875},
		{entity.ActivityActive, 1642.5 * 1.725},
		{entity.ActivityVeryActive, 1642.5 * 1.9},
		{entity.ActivityLevel("couch"), 1642.5 * 1.55},
		{entity.ActivityLevel(""), 1642.5 * 1.55},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateTDEE(1642.5, tt.level), 1e-9)
		})
	}
}

func TestValidActivityLevel(t *testing.T) {
	assert.True(t, ValidActivityLevel(entity.ActivityVeryActive))
	assert.False(t, ValidActivityLevel("extreme"))
}

func TestProfileTargets_DefaultGoal(t *testing.T) {
	p := entity.NewDefaultProfile(uuid.New(), "Ana")

	targets := ProfileTargets(p)

	assert.InDelta(t, 1642.5, targets.BMR, 1e-9)
	assert.InDelta(t, 2545.875, targets.TDEE, 1e-9)
	assert.InDelta(t, 2045.875, targets.CalorieGoal, 1e-9)
	assert.False(t, targets.GoalIsSet)
}

func TestProfileTargets_ExplicitGoal(t *testing.T) {
	goal := 1800.0
	protein := 140.0
	p := entity.NewDefaultProfile(uuid.New(), "Ana")
	p.CalorieGoal = &goal
	p.ProteinGoal = &protein

	targets := ProfileTargets(p)

	assert.Equal(t, 1800.0, targets.CalorieGoal)
	assert.True(t, targets.GoalIsSet)
	assert.Equal(t, &protein, targets.ProteinGoal)
	assert.Nil(t, targets.FatGoal)
}
