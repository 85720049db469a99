package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CustomFood is a reusable user-defined food. Names are unique per user, case-insensitively.
type CustomFood struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FoodName  string    `json:"food_name"`
	Per100g   Nutrients `json:"-"`
	Brand     *string   `json:"brand"`
	CreatedAt time.Time `json:"created_at"`
}

type customFoodJSON struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	FoodName        string    `json:"food_name"`
	CaloriesPer100g float64   `json:"calories_per_100g"`
	ProteinPer100g  float64   `json:"protein_per_100g"`
	CarbsPer100g    float64   `json:"carbs_per_100g"`
	FatPer100g      float64   `json:"fat_per_100g"`
	Brand           *string   `json:"brand"`
	CreatedAt       time.Time `json:"created_at"`
}

// MarshalJSON flattens the per-100 g values into *_per_100g fields.
func (f CustomFood) MarshalJSON() ([]byte, error) {
	return json.Marshal(customFoodJSON{
		ID:              f.ID,
		UserID:          f.UserID,
		FoodName:        f.FoodName,
		CaloriesPer100g: f.Per100g.Calories,
		ProteinPer100g:  f.Per100g.Protein,
		CarbsPer100g:    f.Per100g.Carbs,
		FatPer100g:      f.Per100g.Fat,
		Brand:           f.Brand,
		CreatedAt:       f.CreatedAt,
	})
}
