package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeficitStatus(t *testing.T) {
	tests := []struct {
		remaining float64
		expected  string
	}{
		{50, StatusOnTrack},
		{0, StatusOnTrack},
		{-0.5, StatusWarning},
		{-150, StatusWarning},
		{-200, StatusWarning},
		{-200.01, StatusDanger},
		{-250, StatusDanger},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DeficitStatus(tt.remaining), "remaining=%v", tt.remaining)
	}
}
