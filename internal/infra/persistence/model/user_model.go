package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time

	Profile *ProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id (UUID).
type ProfileModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(100)"`
	WeightKg      float64   `gorm:"not null"`
	HeightCm      float64   `gorm:"not null"`
	Age           int       `gorm:"not null"`
	Sex           string    `gorm:"type:varchar(10);not null"`
	ActivityLevel string    `gorm:"type:varchar(20);not null"`
	CalorieGoal   *float64
	ProteinGoal   *float64
	CarbsGoal     *float64
	FatGoal       *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
