package nutrition

// Status labels for a remaining calorie budget.
const (
	StatusOnTrack = "on track"
	StatusWarning = "warning"
	StatusDanger  = "danger"
)

// WarningThreshold is the overshoot in kcal tolerated before a day is in danger.
const WarningThreshold = 200

// DeficitStatus classifies remaining = target - consumed.
func DeficitStatus(remaining float64) string {
	switch {
	case remaining >= 0:
		return StatusOnTrack
	case remaining >= -WarningThreshold:
		return StatusWarning
	default:
		return StatusDanger
	}
}
