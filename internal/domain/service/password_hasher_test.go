package service

import (
	"strings"
	"testing"

	domainerrors "macrolog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"too short", "12345", true},
		{"minimum length", "123456", false},
		{"bcrypt limit", strings.Repeat("a", MaxPasswordBytes), false},
		{"over bcrypt limit", strings.Repeat("a", MaxPasswordBytes+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
