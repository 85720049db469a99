package repository

import (
	"context"
	"errors"

	"macrolog/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrDailyLogNotFound  = errors.New("daily log not found")
	ErrFoodEntryNotFound = errors.New("food entry not found")
)

// DailyLogRepository stores one log per (user, date).
type DailyLogRepository interface {
	FindByDate(ctx context.Context, userID uuid.UUID, date string) (*entity.DailyLog, error)

	// FindOrCreate inserts log unless one exists for the same user and date, and
	// returns the stored row either way.
	FindOrCreate(ctx context.Context, log *entity.DailyLog) (*entity.DailyLog, error)

	// UpdateDetails writes weight and notes.
	UpdateDetails(ctx context.Context, log *entity.DailyLog) error

	// ListBetween returns logs with from <= log_date <= to, ordered by date.
	ListBetween(ctx context.Context, userID uuid.UUID, from, to string) ([]*entity.DailyLog, error)
}

// FoodEntryRepository stores consumed foods. Entries are immutable once written.
type FoodEntryRepository interface {
	Create(ctx context.Context, entry *entity.FoodEntry) error

	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.FoodEntry, error)

	// ListByDailyLogs returns entries of the given logs in creation order.
	ListByDailyLogs(ctx context.Context, userID uuid.UUID, dailyLogIDs []uuid.UUID) ([]*entity.FoodEntry, error)

	Delete(ctx context.Context, userID, id uuid.UUID) error
}
