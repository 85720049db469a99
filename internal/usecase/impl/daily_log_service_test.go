package impl

import (
	"context"
	"testing"

	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/nutrition"
	"macrolog/internal/domain/repository"
	"macrolog/internal/domain/service"
	mockRepo "macrolog/internal/mocks/repository"
	mockSvc "macrolog/internal/mocks/service"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dailyLogServiceFixtures holds all test dependencies for daily log service tests.
type dailyLogServiceFixtures struct {
	service        usecase.DailyLogUsecase
	txManager      *mockRepo.MockTransactionManager
	dailyLogRepo   *mockRepo.MockDailyLogRepository
	foodEntryRepo  *mockRepo.MockFoodEntryRepository
	mealPlanRepo   *mockRepo.MockMealPlanRepository
	customFoodRepo *mockRepo.MockCustomFoodRepository
	profileRepo    *mockRepo.MockProfileRepository
	publisher      *mockSvc.MockEventPublisher
}

func createTestDailyLogService(t *testing.T) dailyLogServiceFixtures {
	f := dailyLogServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		dailyLogRepo:   mockRepo.NewMockDailyLogRepository(t),
		foodEntryRepo:  mockRepo.NewMockFoodEntryRepository(t),
		mealPlanRepo:   mockRepo.NewMockMealPlanRepository(t),
		customFoodRepo: mockRepo.NewMockCustomFoodRepository(t),
		profileRepo:    mockRepo.NewMockProfileRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}

	f.service = NewDailyLogService(DailyLogServiceParams{
		TxManager:      f.txManager,
		DailyLogRepo:   f.dailyLogRepo,
		FoodEntryRepo:  f.foodEntryRepo,
		MealPlanRepo:   f.mealPlanRepo,
		CustomFoodRepo: f.customFoodRepo,
		ProfileRepo:    f.profileRepo,
		Publisher:      f.publisher,
		Config:         newTestConfig(30, 60),
		Logger:         newDiscardLogger(),
	})

	return f
}

func TestDailyLogService_GetSummary_NoLog(t *testing.T) {
	fx := createTestDailyLogService(t)

	ctx := context.Background()
	userID := uuid.New()
	plans := []*entity.MealPlan{{ID: uuid.New(), Name: "Breakfast", TargetCalories: 400, MealOrder: 1}}

	fx.dailyLogRepo.EXPECT().FindByDate(ctx, userID, "2026-03-01").Return(nil, repository.ErrDailyLogNotFound)
	fx.mealPlanRepo.EXPECT().ListByUser(ctx, userID).Return(plans, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(entity.NewDefaultProfile(userID, ""), nil)

	summary, err := fx.service.GetSummary(ctx, userID, "2026-03-01")

	require.NoError(t, err)
	assert.Nil(t, summary.Log)
	assert.Empty(t, summary.Entries)
	assert.Equal(t, entity.Nutrients{}, summary.Totals)
	require.Len(t, summary.Meals, 1)
	assert.Equal(t, 400.0, summary.Meals[0].Remaining)
	require.NotNil(t, summary.Remaining)
	assert.InDelta(t, 2045.875, *summary.Remaining, 1e-9)
	assert.Equal(t, nutrition.StatusOnTrack, summary.Status)
}

func TestDailyLogService_GetSummary_WithEntries(t *testing.T) {
	fx := createTestDailyLogService(t)

	ctx := context.Background()
	userID := uuid.New()
	dailyLog := &entity.DailyLog{ID: uuid.New(), UserID: userID, LogDate: "2026-03-01"}
	lunchID := uuid.New()
	plans := []*entity.MealPlan{{ID: lunchID, Name: "Lunch", TargetCalories: 600, MealOrder: 2}}
	entries := []*entity.FoodEntry{
		{ID: uuid.New(), MealPlanID: &lunchID, Nutrients: entity.Nutrients{Calories: 450.5, Protein: 30}},
		{ID: uuid.New(), MealPlanID: &lunchID, Nutrients: entity.Nutrients{Calories: 300, Fat: 12}},
		{ID: uuid.New(), Nutrients: entity.Nutrients{Calories: 120.25, Carbs: 20}},
	}
	profile := entity.NewDefaultProfile(userID, "")
	profile.CalorieGoal = ptr(800.0)

	fx.dailyLogRepo.EXPECT().FindByDate(ctx, userID, "2026-03-01").Return(dailyLog, nil)
	fx.foodEntryRepo.EXPECT().ListByDailyLogs(ctx, userID, []uuid.UUID{dailyLog.ID}).Return(entries, nil)
	fx.mealPlanRepo.EXPECT().ListByUser(ctx, userID).Return(plans, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	summary, err := fx.service.GetSummary(ctx, userID, "2026-03-01")

	require.NoError(t, err)
	assert.Equal(t, dailyLog, summary.Log)
	assert.Equal(t, 870.75, summary.Totals.Calories)
	assert.Equal(t, 30.0, summary.Totals.Protein)
	assert.Equal(t, 20.0, summary.Totals.Carbs)
	assert.Equal(t, 12.0, summary.Totals.Fat)

	require.Len(t, summary.Meals, 2)
	assert.Equal(t, 750.5, summary.Meals[0].Totals.Calories)
	assert.Equal(t, nutrition.StatusWarning, summary.Meals[0].Status)
	assert.Equal(t, nutrition.UnassignedMealName, summary.Meals[1].Name)

	require.NotNil(t, summary.Remaining)
	assert.Equal(t, -70.75, *summary.Remaining)
	assert.Equal(t, nutrition.StatusWarning, summary.Status)
}

func TestDailyLogService_GetSummary_InvalidDate(t *testing.T) {
	fx := createTestDailyLogService(t)

	_, err := fx.service.GetSummary(context.Background(), uuid.New(), "03/01/2026")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDailyLogService_CreateLog_ReturnsExisting(t *testing.T) {
	fx := createTestDailyLogService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.DailyLog{ID: uuid.New(), UserID: userID, LogDate: "2026-03-01"}

	fx.dailyLogRepo.EXPECT().
		FindOrCreate(ctx, mock.MatchedBy(func(l *entity.DailyLog) bool {
			return l.UserID == userID && l.LogDate == "2026-03-01"
		})).
		Return(existing, nil).
		Twice()

	first, err := fx.service.CreateLog(ctx, userID, "2026-03-01")
	require.NoError(t, err)
	second, err := fx.service.CreateLog(ctx, userID, "2026-03-01")
	require.NoError(t, err)

	assert.Equal(t, existing.ID, first.ID)
	assert.Equal(t, first.ID, second.ID)
}

func TestDailyLogService_AddFood_ScalesPer100gAndLeavesTarget(t *testing.T) {
	fx := createTestDailyLogService(t)

	ctx := context.Background()
	userID := uuid.New()
	mealPlanID := uuid.New()
	dailyLog := &entity.DailyLog{ID: uuid.New(), UserID: userID, LogDate: "2026-03-01"}

	fx.mealPlanRepo.EXPECT().FindByID(ctx, userID, mealPlanID).
		Return(&entity.MealPlan{ID: mealPlanID, UserID: userID, TargetCalories: 450}, nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txLogRepo := mockRepo.NewMockDailyLogRepository(t)
		txEntryRepo := mockRepo.NewMockFoodEntryRepository(t)

		factory.EXPECT().DailyLogRepo().Return(txLogRepo)
		factory.EXPECT().FoodEntryRepo().Return(txEntryRepo)

		txLogRepo.EXPECT().FindOrCreate(ctx, mock.AnythingOfType("*entity.DailyLog")).Return(dailyLog, nil)
		txEntryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.FoodEntry")).Return(nil)
	})

	fx.publisher.EXPECT().
		PublishMealEvent(ctx, mock.MatchedBy(func(e *service.MealEvent) bool {
			return e.Type == service.MealEventFoodLogged && e.Calories == 325 && e.MealPlanID == mealPlanID.String()
		})).
		Return(nil)

	entry, err := fx.service.AddFood(ctx, userID, usecase.AddFoodInput{
		Date:          "2026-03-01",
		MealPlanID:    &mealPlanID,
		FoodName:      "Rice",
		QuantityGrams: 250,
		Per100g:       &entity.Nutrients{Calories: 130, Protein: 2.4, Carbs: 28, Fat: 0.2},
	})

	require.NoError(t, err)
	assert.Equal(t, 325.0, entry.Calories)
	assert.InDelta(t, 6.0, entry.Protein, 1e-9)
	assert.Equal(t, 70.0, entry.Carbs)
	assert.InDelta(t, 0.5, entry.Fat, 1e-9)
	assert.Equal(t, dailyLog.ID, entry.DailyLogID)
	fx.mealPlanRepo.AssertNotCalled(t, "UpdateTargetCalories", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDailyLogService_AddFood_FromCustomFood(t *testing.T) {
	fx := createTestDailyLogService(t)

	ctx := context.Background()
	userID := uuid.New()
	customID := uuid.New()
	dailyLog := &entity.DailyLog{ID: uuid.New(), UserID: userID, LogDate: "2026-03-01"}

	fx.customFoodRepo.EXPECT().FindByID(ctx, userID, customID).Return(&entity.CustomFood{
		ID:       customID,
		FoodName: "Greek yogurt",
		Per100g:  entity.Nutrients{Calories: 60, Protein: 10},
	}, nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txLogRepo := mockRepo.NewMockDailyLogRepository(t)
		txEntryRepo := mockRepo.NewMockFoodEntryRepository(t)

		factory.EXPECT().DailyLogRepo().Return(txLogRepo)
		factory.EXPECT().FoodEntryRepo().Return(txEntryRepo)

		txLogRepo.EXPECT().FindOrCreate(ctx, mock.Anything).Return(dailyLog, nil)
		txEntryRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	})
	fx.publisher.EXPECT().PublishMealEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	entry, err := fx.service.AddFood(ctx, userID, usecase.AddFoodInput{
		Date:          "2026-03-01",
		QuantityGrams: 150,
		CustomFoodID:  &customID,
	})

	require.NoError(t, err, "publish failures must not fail the request")
	assert.Equal(t, "Greek yogurt", entry.FoodName)
	assert.Equal(t, 90.0, entry.Calories)
	assert.Equal(t, 15.0, entry.Protein)
	assert.Nil(t, entry.MealPlanID)
}

func TestDailyLogService_AddFood_ExplicitMacrosDefaultToZero(t *testing.T) {
	fx := createTestDailyLogService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txLogRepo := mockRepo.NewMockDailyLogRepository(t)
		txEntryRepo := mockRepo.NewMockFoodEntryRepository(t)

		factory.EXPECT().DailyLogRepo().Return(txLogRepo)
		factory.EXPECT().FoodEntryRepo().Return(txEntryRepo)

		txLogRepo.EXPECT().FindOrCreate(ctx, mock.Anything).Return(&entity.DailyLog{ID: uuid.New()}, nil)
		txEntryRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	})
	fx.publisher.EXPECT().PublishMealEvent(ctx, mock.Anything).Return(nil)

	entry, err := fx.service.AddFood(ctx, userID, usecase.AddFoodInput{
		Date:          "2026-03-01",
		FoodName:      "Apple",
		QuantityGrams: 180,
		Calories:      ptr(95.0),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.Nutrients{Calories: 95}, entry.Nutrients)
}

func TestDailyLogService_AddFood_Rejects(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("no nutrient source", func(t *testing.T) {
		fx := createTestDailyLogService(t)

		_, err := fx.service.AddFood(ctx, userID, usecase.AddFoodInput{Date: "2026-03-01", FoodName: "Mystery", QuantityGrams: 10})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("negative calories", func(t *testing.T) {
		fx := createTestDailyLogService(t)

		_, err := fx.service.AddFood(ctx, userID, usecase.AddFoodInput{
			Date: "2026-03-01", FoodName: "Bad", QuantityGrams: 10, Calories: ptr(-1.0),
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing name", func(t *testing.T) {
		fx := createTestDailyLogService(t)

		_, err := fx.service.AddFood(ctx, userID, usecase.AddFoodInput{
			Date: "2026-03-01", FoodName: "  ", QuantityGrams: 10, Calories: ptr(1.0),
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("meal plan of another user", func(t *testing.T) {
		fx := createTestDailyLogService(t)
		mealPlanID := uuid.New()

		fx.mealPlanRepo.EXPECT().FindByID(ctx, userID, mealPlanID).Return(nil, repository.ErrMealPlanNotFound)

		_, err := fx.service.AddFood(ctx, userID, usecase.AddFoodInput{
			Date: "2026-03-01", FoodName: "Egg", QuantityGrams: 50, Calories: ptr(70.0), MealPlanID: &mealPlanID,
		})

		assert.ErrorIs(t, err, domainerrors.ErrMealPlanNotFound)
	})
}

func TestDailyLogService_UpdateLog(t *testing.T) {
	fx := createTestDailyLogService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.DailyLog{ID: uuid.New(), UserID: userID, LogDate: "2026-03-01", Notes: ptr("old")}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txLogRepo := mockRepo.NewMockDailyLogRepository(t)
		factory.EXPECT().DailyLogRepo().Return(txLogRepo)

		txLogRepo.EXPECT().FindOrCreate(ctx, mock.Anything).Return(stored, nil)
		txLogRepo.EXPECT().UpdateDetails(ctx, stored).Return(nil)
	})

	updated, err := fx.service.UpdateLog(ctx, userID, usecase.UpdateDailyLogInput{Date: "2026-03-01", WeightKg: ptr(71.2)})

	require.NoError(t, err)
	assert.Equal(t, 71.2, *updated.WeightKg)
	assert.Equal(t, "old", *updated.Notes)
}

func TestDailyLogService_DeleteEntry(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestDailyLogService(t)

		fx.foodEntryRepo.EXPECT().FindByID(ctx, userID, entryID).
			Return(&entity.FoodEntry{ID: entryID, FoodName: "Toast", Nutrients: entity.Nutrients{Calories: 80}}, nil)
		fx.foodEntryRepo.EXPECT().Delete(ctx, userID, entryID).Return(nil)
		fx.publisher.EXPECT().
			PublishMealEvent(ctx, mock.MatchedBy(func(e *service.MealEvent) bool {
				return e.Type == service.MealEventFoodRemoved && e.Calories == 80
			})).
			Return(nil)

		require.NoError(t, fx.service.DeleteEntry(ctx, userID, entryID))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestDailyLogService(t)

		fx.foodEntryRepo.EXPECT().FindByID(ctx, userID, entryID).Return(nil, repository.ErrFoodEntryNotFound)

		err := fx.service.DeleteEntry(ctx, userID, entryID)

		assert.ErrorIs(t, err, domainerrors.ErrFoodEntryNotFound)
	})
}

func TestDailyLogService_History_Streaks(t *testing.T) {
	fx := createTestDailyLogService(t)

	ctx := context.Background()
	userID := uuid.New()

	consumption := map[string]float64{
		"2026-01-01": 500,
		"2026-01-02": 600,
		"2026-01-04": 400,
		"2026-01-05": 300,
		"2026-01-06": 700,
		"2026-01-07": 200,
	}
	dates := []string{"2026-01-01", "2026-01-02", "2026-01-04", "2026-01-05", "2026-01-06", "2026-01-07"}

	logs := make([]*entity.DailyLog, 0, len(dates))
	entries := make([]*entity.FoodEntry, 0, len(dates))
	ids := make([]uuid.UUID, 0, len(dates))
	for _, d := range dates {
		l := &entity.DailyLog{ID: uuid.New(), UserID: userID, LogDate: d}
		logs = append(logs, l)
		ids = append(ids, l.ID)
		entries = append(entries, &entity.FoodEntry{ID: uuid.New(), DailyLogID: l.ID, Nutrients: entity.Nutrients{Calories: consumption[d]}})
	}

	fx.dailyLogRepo.EXPECT().ListBetween(ctx, userID, "2026-01-01", "2026-01-07").Return(logs, nil)
	fx.foodEntryRepo.EXPECT().ListByDailyLogs(ctx, userID, ids).Return(entries, nil)

	out, err := fx.service.History(ctx, userID, usecase.HistoryInput{Today: "2026-01-07", Days: 7, Target: ptr(600.0)})

	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", out.From)
	assert.Equal(t, "2026-01-07", out.To)

	require.Len(t, out.Days, 6)
	assert.Equal(t, "2026-01-07", out.Days[0].Date)
	assert.Equal(t, "2026-01-01", out.Days[5].Date)
	assert.Equal(t, 200.0, out.Days[0].TotalCalories)

	assert.Equal(t, 7, out.Stats.DaysInWindow)
	assert.Equal(t, 6, out.Stats.DaysWithData)
	assert.Equal(t, 5, out.Stats.DaysOnTrack)
	assert.Equal(t, 1, out.Stats.CurrentStreak)
	assert.Equal(t, 2, out.Stats.BestStreak)
	assert.Equal(t, 900.0, out.Stats.TotalDeficit)
	assert.Equal(t, 450.0, out.Stats.AverageCalories)
}

func TestDailyLogService_History_DefaultWindowAndMealTarget(t *testing.T) {
	fx := createTestDailyLogService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.dailyLogRepo.EXPECT().ListBetween(ctx, userID, "2026-02-01", "2026-03-02").Return([]*entity.DailyLog{}, nil)
	fx.foodEntryRepo.EXPECT().ListByDailyLogs(ctx, userID, []uuid.UUID{}).Return([]*entity.FoodEntry{}, nil)
	fx.mealPlanRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.MealPlan{
		{TargetCalories: 400}, {TargetCalories: 600}, {TargetCalories: 200}, {TargetCalories: 500},
	}, nil)

	out, err := fx.service.History(ctx, userID, usecase.HistoryInput{Today: "2026-03-02"})

	require.NoError(t, err)
	assert.Empty(t, out.Days)
	assert.Equal(t, 30, out.Stats.DaysInWindow)
	assert.Equal(t, 1700.0, out.Stats.Target)
	assert.Equal(t, 0, out.Stats.DaysWithData)
}

func TestDailyLogService_History_WindowBounds(t *testing.T) {
	for _, days := range []int{-1, 61} {
		fx := createTestDailyLogService(t)

		_, err := fx.service.History(context.Background(), uuid.New(), usecase.HistoryInput{Today: "2026-03-02", Days: days})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "days=%d", days)
	}
}
