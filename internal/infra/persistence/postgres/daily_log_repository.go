package postgres

import (
	"context"
	"time"

	"macrolog/internal/domain/entity"
	"macrolog/internal/domain/repository"
	"macrolog/internal/infra/persistence/model"
	"macrolog/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dailyLogRepository implements the domain.DailyLogRepository interface using GORM.
type dailyLogRepository struct {
	q *query.Query
}

// NewDailyLogRepository is the constructor for dailyLogRepository.
// It returns the repository as a domain.DailyLogRepository interface.
func NewDailyLogRepository(db *gorm.DB) repository.DailyLogRepository {
	return &dailyLogRepository{
		q: query.Use(db),
	}
}

// FindByDate retrieves the user's log for one calendar day (YYYY-MM-DD).
// It returns repository.ErrDailyLogNotFound when nothing was logged that day.
func (repo *dailyLogRepository) FindByDate(ctx context.Context, userID uuid.UUID, date string) (*entity.DailyLog, error) {
	d := repo.q.DailyLogModel
	logM, err := d.WithContext(ctx).
		Where(d.UserID.Eq(userID), d.LogDate.Eq(date)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDailyLogNotFound
		}

		return nil, translateError(err, "failed to find daily log")
	}

	return toDailyLogDomain(logM), nil
}

// FindOrCreate relies on the (user_id, log_date) unique index: a concurrent
// insert for the same day is skipped and the surviving row is read back.
func (repo *dailyLogRepository) FindOrCreate(ctx context.Context, log *entity.DailyLog) (*entity.DailyLog, error) {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	logM := fromDailyLogDomain(log)

	err := repo.q.DailyLogModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "log_date"}},
			DoNothing: true,
		}).
		Create(logM)
	if err != nil {
		return nil, translateError(err, "failed to create daily log")
	}

	return repo.FindByDate(ctx, log.UserID, log.LogDate)
}

// UpdateDetails overwrites the weight and notes of an existing log.
// A log owned by another user counts as not found.
func (repo *dailyLogRepository) UpdateDetails(ctx context.Context, log *entity.DailyLog) error {
	log.UpdatedAt = time.Now()

	d := repo.q.DailyLogModel
	info, err := d.WithContext(ctx).
		Where(d.ID.Eq(log.ID), d.UserID.Eq(log.UserID)).
		Updates(map[string]any{
			"weight_kg":  log.WeightKg,
			"notes":      log.Notes,
			"updated_at": log.UpdatedAt,
		})
	if err != nil {
		return translateError(err, "failed to update daily log")
	}
	if info.RowsAffected == 0 {
		return repository.ErrDailyLogNotFound
	}

	return nil
}

// ListBetween returns the user's logs with from <= log_date <= to, oldest first.
// Dates are compared as YYYY-MM-DD strings, which sort chronologically.
func (repo *dailyLogRepository) ListBetween(ctx context.Context, userID uuid.UUID, from, to string) ([]*entity.DailyLog, error) {
	d := repo.q.DailyLogModel
	logMs, err := d.WithContext(ctx).
		Where(d.UserID.Eq(userID), d.LogDate.Gte(from), d.LogDate.Lte(to)).
		Order(d.LogDate).
		Find()
	if err != nil {
		return nil, translateError(err, "failed to list daily logs")
	}

	logs := make([]*entity.DailyLog, 0, len(logMs))
	for _, m := range logMs {
		logs = append(logs, toDailyLogDomain(m))
	}

	return logs, nil
}

func toDailyLogDomain(m *model.DailyLogModel) *entity.DailyLog {
	return &entity.DailyLog{
		ID:        m.ID,
		UserID:    m.UserID,
		LogDate:   m.LogDate,
		WeightKg:  m.WeightKg,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDailyLogDomain(l *entity.DailyLog) *model.DailyLogModel {
	return &model.DailyLogModel{
		ID:        l.ID,
		UserID:    l.UserID,
		LogDate:   l.LogDate,
		WeightKg:  l.WeightKg,
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
