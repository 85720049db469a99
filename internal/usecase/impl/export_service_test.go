package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/repository"
	"macrolog/internal/domain/service"
	mockRepo "macrolog/internal/mocks/repository"
	mockSvc "macrolog/internal/mocks/service"
	mockUsecase "macrolog/internal/mocks/usecase"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExportService_Export_WritesSnapshot(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	archive := mockSvc.NewMockArchiveStore(t)
	dailyLogs := mockUsecase.NewMockDailyLogUsecase(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	mealPlanRepo := mockRepo.NewMockMealPlanRepository(t)
	plannedFoodRepo := mockRepo.NewMockPlannedFoodRepository(t)
	customFoodRepo := mockRepo.NewMockCustomFoodRepository(t)

	srv := NewExportService(ExportServiceParams{
		Archive:         archive,
		DailyLogs:       dailyLogs,
		ProfileRepo:     profileRepo,
		MealPlanRepo:    mealPlanRepo,
		PlannedFoodRepo: plannedFoodRepo,
		CustomFoodRepo:  customFoodRepo,
		Logger:          newDiscardLogger(),
	}).(*exportService)
	srv.now = func() time.Time { return time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC) }

	history := &usecase.HistoryOutput{From: "2026-02-24", To: "2026-03-02"}
	dailyLogs.EXPECT().History(ctx, userID, usecase.HistoryInput{Today: "2026-03-02", Days: 7}).Return(history, nil)
	profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	mealPlanRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.MealPlan{{Name: "Lunch"}}, nil)
	plannedFoodRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.PlannedFood{}, nil)
	customFoodRepo.EXPECT().Search(ctx, userID, "", mock.AnythingOfType("int")).Return([]*entity.CustomFood{}, nil)

	var written []byte
	wantKey := userID.String() + "/20260302T083000Z.json"
	archive.EXPECT().Write(ctx, wantKey, "application/json", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, data []byte) (*service.ArchiveObject, error) {
			written = data
			return &service.ArchiveObject{Key: "exports/" + key, Size: int64(len(data))}, nil
		})

	out, err := srv.Export(ctx, userID, usecase.ExportInput{Today: "2026-03-02", Days: 7})

	require.NoError(t, err)
	assert.Equal(t, "exports/"+wantKey, out.Key)
	assert.Equal(t, int64(len(written)), out.Size)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(written, &doc))
	assert.Equal(t, userID.String(), doc["user_id"])
	assert.Nil(t, doc["profile"])
	assert.Len(t, doc["meal_plans"], 1)
}

func TestExportService_Export_NoArchive(t *testing.T) {
	srv := NewExportService(ExportServiceParams{Logger: newDiscardLogger()})

	_, err := srv.Export(context.Background(), uuid.New(), usecase.ExportInput{Today: "2026-03-02"})

	assert.True(t, errors.Is(err, domainerrors.ErrArchiveUnavailable))
}
