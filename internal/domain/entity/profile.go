package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sex selects the Mifflin-St Jeor constant.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel is one of the five activity tiers used for TDEE.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Profile holds the body metrics and goals of a user. One per user, upserted wholesale.
type Profile struct {
	UserID        uuid.UUID     `json:"user_id"`
	Name          string        `json:"name"`
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	Age           int           `json:"age"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	CalorieGoal   *float64      `json:"calorie_goal"` // nil means "use TDEE - 500"
	ProteinGoal   *float64      `json:"protein_goal"`
	CarbsGoal     *float64      `json:"carbs_goal"`
	FatGoal       *float64      `json:"fat_goal"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// NewDefaultProfile returns the profile a new account starts with.
func NewDefaultProfile(userID uuid.UUID, name string) *Profile {
	now := time.Now()

	return &Profile{
		UserID:        userID,
		Name:          name,
		WeightKg:      70,
		HeightCm:      170,
		Age:           25,
		Sex:           SexMale,
		ActivityLevel: ActivityModerate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
