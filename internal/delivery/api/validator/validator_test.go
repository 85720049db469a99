package validator

import (
	"testing"

	domainerrors "macrolog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string   `json:"email" validate:"required,email"`
	Sex      string   `json:"sex" validate:"omitempty,oneof=male female"`
	Quantity *float64 `json:"quantity_grams" validate:"omitempty,gte=0"`
	Date     string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()
	negative := -1.0

	tests := []struct {
		name    string
		input   sample
		message string
	}{
		{name: "valid", input: sample{Email: "a@b.co", Sex: "female"}},
		{name: "missing email", input: sample{}, message: "email is required"},
		{name: "bad email", input: sample{Email: "nope"}, message: "email must be a valid email address"},
		{name: "bad enum", input: sample{Email: "a@b.co", Sex: "other"}, message: "sex must be one of: male, female"},
		{name: "negative", input: sample{Email: "a@b.co", Quantity: &negative}, message: "quantity_grams must be greater than or equal to 0"},
		{name: "bad date", input: sample{Email: "a@b.co", Date: "2024/01/01"}, message: "date must be a date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}
