package postgres

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func dialError() error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	user, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."email" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}).
			AddRow(id.String(), "ana@example.com", "hash", "Ana", time.Now()))

	user, err := repo.FindByEmail(context.Background(), "ana@example.com")

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_StoreUnreachable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(dialError())

	_, err := repo.FindByID(context.Background(), uuid.New())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}

func TestDailyLogRepository_FindOrCreate_ReturnsExisting(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDailyLogRepository(db)
	userID := uuid.New()
	existingID := uuid.New()

	mock.ExpectExec(`INSERT INTO "daily_logs" .* ON CONFLICT \("user_id","log_date"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "daily_logs" WHERE "daily_logs"."user_id" = \$1 AND "daily_logs"."log_date" = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "log_date"}).
			AddRow(existingID.String(), userID.String(), "2024-03-01"))

	log, err := repo.FindOrCreate(context.Background(), &entity.DailyLog{UserID: userID, LogDate: "2024-03-01"})

	require.NoError(t, err)
	assert.Equal(t, existingID, log.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyLogRepository_UpdateDetails_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDailyLogRepository(db)

	mock.ExpectExec(`UPDATE "daily_logs" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateDetails(context.Background(), &entity.DailyLog{ID: uuid.New(), UserID: uuid.New()})

	assert.ErrorIs(t, err, repository.ErrDailyLogNotFound)
}

func TestDailyLogRepository_ListBetween(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDailyLogRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "daily_logs" WHERE "daily_logs"."user_id" = \$1 AND "daily_logs"."log_date" >= \$2 AND "daily_logs"."log_date" <= \$3 ORDER BY "daily_logs"."log_date"`).
		WithArgs(sqlmock.AnyArg(), "2024-03-01", "2024-03-07").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "log_date"}).
			AddRow(uuid.NewString(), userID.String(), "2024-03-01").
			AddRow(uuid.NewString(), userID.String(), "2024-03-04"))

	logs, err := repo.ListBetween(context.Background(), userID, "2024-03-01", "2024-03-07")

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2024-03-04", logs[1].LogDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlannedFoodRepository_DeleteByMealPlan_NoRowsIsFine(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlannedFoodRepository(db)

	mock.ExpectExec(`DELETE FROM "planned_foods" WHERE "planned_foods"."user_id" = \$1 AND "planned_foods"."meal_plan_id" = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByMealPlan(context.Background(), uuid.New(), uuid.New())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFoodEntryRepository_ListByDailyLogs_EmptyIDsSkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFoodEntryRepository(db)

	entries, err := repo.ListByDailyLogs(context.Background(), uuid.New(), nil)

	require.NoError(t, err)
	assert.Empty(t, entries)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFoodEntryRepository_ListByDailyLogs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFoodEntryRepository(db)
	userID := uuid.New()
	logID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "food_entries" WHERE "food_entries"."user_id" = \$1 AND "food_entries"."daily_log_id" IN \(\$2\) ORDER BY "food_entries"."created_at","food_entries"."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "daily_log_id", "food_name", "quantity_grams", "calories"}).
			AddRow(uuid.NewString(), userID.String(), logID.String(), "Rice", 250.0, 325.0).
			AddRow(uuid.NewString(), userID.String(), logID.String(), "Egg", 50.0, 78.0))

	entries, err := repo.ListByDailyLogs(context.Background(), userID, []uuid.UUID{logID})

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Rice", entries[0].FoodName)
	assert.Equal(t, 325.0, entries[0].Calories)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFoodEntryRepository_Delete_OtherUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFoodEntryRepository(db)

	mock.ExpectExec(`DELETE FROM "food_entries" WHERE "food_entries"."id" = \$1 AND "food_entries"."user_id" = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrFoodEntryNotFound)
}

func TestMealPlanRepository_MaxMealOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMealPlanRepository(db)

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(meal_order\), 0\) FROM "meal_plans" WHERE "meal_plans"."user_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4))

	maxOrder, err := repo.MaxMealOrder(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, 4, maxOrder)
}

func TestMealPlanRepository_LockByID_UsesRowLock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMealPlanRepository(db)
	userID := uuid.New()
	planID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "meal_plans" WHERE "meal_plans"."id" = \$1 AND "meal_plans"."user_id" = \$2 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "target_calories", "meal_order"}).
			AddRow(planID.String(), userID.String(), "Lunch", 600.0, 2))

	plan, err := repo.LockByID(context.Background(), userID, planID)

	require.NoError(t, err)
	assert.Equal(t, 600.0, plan.TargetCalories)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMealPlanRepository_UpdateTargetCalories(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMealPlanRepository(db)

	mock.ExpectExec(`UPDATE "meal_plans" SET "target_calories"=\$1 WHERE "meal_plans"."id" = \$2 AND "meal_plans"."user_id" = \$3`).
		WithArgs(350.0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTargetCalories(context.Background(), uuid.New(), uuid.New(), 350)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomFoodRepository_Search(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomFoodRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "custom_foods" WHERE "custom_foods"."user_id" = \$1 AND food_name ILIKE \$2 ORDER BY "custom_foods"."food_name" LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "food_name", "calories"}).
			AddRow(uuid.NewString(), userID.String(), "Dark chocolate 50%", 546.0))

	foods, err := repo.Search(context.Background(), userID, "50%", 50)

	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, 546.0, foods[0].Per100g.Calories)
}

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `50\%`, likeEscaper.Replace("50%"))
	assert.Equal(t, `a\_b`, likeEscaper.Replace("a_b"))
	assert.Equal(t, `c:\\d`, likeEscaper.Replace(`c:\d`))
}

func TestCustomFoodRepository_Update_NameConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomFoodRepository(db)

	mock.ExpectExec(`UPDATE "custom_foods" SET`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	err := repo.Update(context.Background(), &entity.CustomFood{ID: uuid.New(), UserID: uuid.New(), FoodName: "Rice"})

	assert.ErrorIs(t, err, repository.ErrCustomFoodConflict)
}

func TestCustomFoodRepository_FindByName_CaseInsensitive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomFoodRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "custom_foods" WHERE "custom_foods"."user_id" = \$1 AND LOWER\(food_name\) = LOWER\(\$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByName(context.Background(), uuid.New(), "RICE")

	assert.ErrorIs(t, err, repository.ErrCustomFoodNotFound)
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		httpCode int
	}{
		{"dial", dialError(), http.StatusServiceUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, http.StatusServiceUnavailable},
		{"connection exception class", &pgconn.PgError{Code: "08006"}, http.StatusServiceUnavailable},
		{"check violation", &pgconn.PgError{Code: "23514"}, http.StatusBadRequest},
		{"syntax", &pgconn.PgError{Code: "42601"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var appErr domainerrors.AppError
			require.ErrorAs(t, translateError(tt.err, "op"), &appErr)
			assert.Equal(t, tt.httpCode, appErr.HTTPCode())
		})
	}
}
