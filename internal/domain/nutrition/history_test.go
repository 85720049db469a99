package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func window(calories ...float64) []DayConsumption {
	days := make([]DayConsumption, len(calories))
	for i, c := range calories {
		// negative marks a day without data
		days[i] = DayConsumption{Calories: c, HasData: c >= 0}
		if c < 0 {
			days[i].Calories = 0
		}
	}

	return days
}

func TestComputePeriodStats_Streaks(t *testing.T) {
	days := window(500, 600, -1, 400, 300, 700, 200)

	stats := ComputePeriodStats(days, 600)

	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 2, stats.BestStreak)
	assert.Equal(t, 5, stats.DaysOnTrack)
	assert.Equal(t, 6, stats.DaysWithData)
	assert.Equal(t, 7, stats.DaysInWindow)
}

func TestComputePeriodStats_Totals(t *testing.T) {
	days := window(500, 600, -1, 400, 300, 700, 200)

	stats := ComputePeriodStats(days, 600)

	assert.Equal(t, 2700.0, stats.TotalConsumed)
	// 100 + 0 + 200 + 300 - 100 + 400
	assert.Equal(t, 900.0, stats.TotalDeficit)
	assert.Equal(t, 450.0, stats.AverageCalories)
	assert.InDelta(t, 900.0/7700, stats.EstimatedFatLossKg, 1e-12)
}

func TestComputePeriodStats_NoData(t *testing.T) {
	stats := ComputePeriodStats(window(-1, -1, -1), 2000)

	assert.Zero(t, stats.DaysWithData)
	assert.Zero(t, stats.AverageCalories)
	assert.Zero(t, stats.TotalDeficit)
	assert.Zero(t, stats.CurrentStreak)
	assert.Zero(t, stats.BestStreak)
}

func TestComputePeriodStats_ZeroConsumptionBreaksStreak(t *testing.T) {
	days := []DayConsumption{
		{Calories: 100, HasData: true},
		{Calories: 0, HasData: true},
		{Calories: 100, HasData: true},
	}

	stats := ComputePeriodStats(days, 500)

	assert.Equal(t, 1, stats.BestStreak)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 2, stats.DaysWithData)
}

func TestComputePeriodStats_Surplus(t *testing.T) {
	stats := ComputePeriodStats(window(2500, 2600), 2000)

	assert.Equal(t, -1100.0, stats.TotalDeficit)
	assert.Less(t, stats.EstimatedFatLossKg, 0.0)
	assert.Zero(t, stats.DaysOnTrack)
}
