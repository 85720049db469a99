package nutrition

// KcalPerKgFat is the energy content of one kilogram of adipose tissue.
const KcalPerKgFat = 7700

// DayConsumption is the calorie total of one calendar day in a window.
// HasData is false for days without any food entry.
type DayConsumption struct {
	Date     string
	Calories float64
	HasData  bool
}

// PeriodStats summarises a window of days against a fixed daily target.
type PeriodStats struct {
	Target             float64 `json:"target"`
	DaysInWindow       int     `json:"days_in_window"`
	DaysWithData       int     `json:"days_with_data"`
	DaysOnTrack        int     `json:"days_on_track"`
	TotalConsumed      float64 `json:"total_consumed"`
	TotalDeficit       float64 `json:"total_deficit"`
	AverageCalories    float64 `json:"average_calories"`
	CurrentStreak      int     `json:"current_streak"`
	BestStreak         int     `json:"best_streak"`
	EstimatedFatLossKg float64 `json:"estimated_fat_loss_kg"`
}

func onTrack(d DayConsumption, target float64) bool {
	return d.HasData && d.Calories > 0 && d.Calories <= target
}

// ComputePeriodStats aggregates days, which must be in chronological order.
// Days with zero consumption count as no data for the deficit and average.
func ComputePeriodStats(days []DayConsumption, target float64) PeriodStats {
	stats := PeriodStats{Target: target, DaysInWindow: len(days)}

	run := 0
	for _, d := range days {
		if d.HasData && d.Calories > 0 {
			stats.DaysWithData++
			stats.TotalConsumed += d.Calories
			stats.TotalDeficit += target - d.Calories
		}

		if onTrack(d, target) {
			stats.DaysOnTrack++
			run++
			if run > stats.BestStreak {
				stats.BestStreak = run
			}
		} else {
			run = 0
		}
	}

	for i := len(days) - 1; i >= 0; i-- {
		if !onTrack(days[i], target) {
			break
		}
		stats.CurrentStreak++
	}

	if stats.DaysWithData > 0 {
		stats.AverageCalories = stats.TotalConsumed / float64(stats.DaysWithData)
	}
	stats.EstimatedFatLossKg = stats.TotalDeficit / KcalPerKgFat

	return stats
}
