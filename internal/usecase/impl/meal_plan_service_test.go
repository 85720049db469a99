package impl

import (
	"context"
	"testing"

	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/repository"
	mockRepo "macrolog/internal/mocks/repository"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mealPlanServiceFixtures holds all test dependencies for meal plan service tests.
type mealPlanServiceFixtures struct {
	service      usecase.MealPlanUsecase
	txManager    *mockRepo.MockTransactionManager
	mealPlanRepo *mockRepo.MockMealPlanRepository
}

func createTestMealPlanService(t *testing.T) mealPlanServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	mealPlanRepo := mockRepo.NewMockMealPlanRepository(t)

	return mealPlanServiceFixtures{
		service: NewMealPlanService(MealPlanServiceParams{
			TxManager:    txManager,
			MealPlanRepo: mealPlanRepo,
			Logger:       newDiscardLogger(),
		}),
		txManager:    txManager,
		mealPlanRepo: mealPlanRepo,
	}
}

func TestMealPlanService_Create_AppendsAfterLast(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPlanRepo := mockRepo.NewMockMealPlanRepository(t)
		factory.EXPECT().MealPlanRepo().Return(txPlanRepo)

		txPlanRepo.EXPECT().MaxMealOrder(ctx, userID).Return(4, nil)
		txPlanRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.MealPlan")).Return(nil)
	})

	plan, err := fx.service.Create(ctx, userID, usecase.CreateMealPlanInput{Name: " Supper ", TargetCalories: 300})

	require.NoError(t, err)
	assert.Equal(t, "Supper", plan.Name)
	assert.Equal(t, 5, plan.MealOrder)
	assert.Equal(t, 300.0, plan.TargetCalories)
	assert.False(t, plan.IsDefault)
}

func TestMealPlanService_Create_RequiresName(t *testing.T) {
	fx := createTestMealPlanService(t)

	_, err := fx.service.Create(context.Background(), uuid.New(), usecase.CreateMealPlanInput{TargetCalories: 300})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMealPlanService_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("seeds four meals", func(t *testing.T) {
		fx := createTestMealPlanService(t)

		var created []*entity.MealPlan
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txPlanRepo := mockRepo.NewMockMealPlanRepository(t)
			factory.EXPECT().MealPlanRepo().Return(txPlanRepo)

			txPlanRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.MealPlan{}, nil)
			txPlanRepo.EXPECT().CreateBatch(ctx, mock.Anything).
				Run(func(_ context.Context, plans []*entity.MealPlan) { created = plans }).
				Return(nil)
		})

		plans, err := fx.service.CreateDefaults(ctx, userID)

		require.NoError(t, err)
		require.Len(t, plans, 4)
		assert.Equal(t, created, plans)

		var total float64
		for i, p := range plans {
			assert.True(t, p.IsDefault)
			assert.Equal(t, i+1, p.MealOrder)
			assert.Equal(t, userID, p.UserID)
			total += p.TargetCalories
		}
		assert.Equal(t, 1700.0, total)
		assert.Equal(t, "Breakfast", plans[0].Name)
		assert.Equal(t, "Dinner", plans[3].Name)
	})

	t.Run("keeps existing plans", func(t *testing.T) {
		fx := createTestMealPlanService(t)

		existing := []*entity.MealPlan{{ID: uuid.New(), UserID: userID, Name: "Brunch"}}
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txPlanRepo := mockRepo.NewMockMealPlanRepository(t)
			factory.EXPECT().MealPlanRepo().Return(txPlanRepo)

			txPlanRepo.EXPECT().ListByUser(ctx, userID).Return(existing, nil)
		})

		plans, err := fx.service.CreateDefaults(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, existing, plans)
	})
}

func TestMealPlanService_Update(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()
	stored := &entity.MealPlan{ID: planID, UserID: userID, Name: "Lunch", TargetCalories: 600, MealOrder: 2}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPlanRepo := mockRepo.NewMockMealPlanRepository(t)
		txFoodRepo := mockRepo.NewMockPlannedFoodRepository(t)
		factory.EXPECT().MealPlanRepo().Return(txPlanRepo)
		factory.EXPECT().PlannedFoodRepo().Return(txFoodRepo)

		txPlanRepo.EXPECT().LockByID(ctx, userID, planID).Return(stored, nil)
		txFoodRepo.EXPECT().ListByMealPlan(ctx, userID, planID).Return([]*entity.PlannedFood{}, nil)
		txPlanRepo.EXPECT().Update(ctx, stored).Return(nil)
	})

	plan, err := fx.service.Update(ctx, userID, planID, usecase.UpdateMealPlanInput{TargetCalories: ptr(650.0), MealOrder: ptr(3)})

	require.NoError(t, err)
	assert.Equal(t, "Lunch", plan.Name)
	assert.Equal(t, 650.0, plan.TargetCalories)
	assert.Equal(t, 3, plan.MealOrder)
}

func TestMealPlanService_Update_NameOnlySkipsPlannedFoods(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()
	stored := &entity.MealPlan{ID: planID, UserID: userID, Name: "Lunch", TargetCalories: 600, MealOrder: 2}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPlanRepo := mockRepo.NewMockMealPlanRepository(t)
		factory.EXPECT().MealPlanRepo().Return(txPlanRepo)

		txPlanRepo.EXPECT().LockByID(ctx, userID, planID).Return(stored, nil)
		txPlanRepo.EXPECT().Update(ctx, stored).Return(nil)
	})

	plan, err := fx.service.Update(ctx, userID, planID, usecase.UpdateMealPlanInput{Name: ptr("  Brunch ")})

	require.NoError(t, err)
	assert.Equal(t, "Brunch", plan.Name)
	assert.Equal(t, 600.0, plan.TargetCalories)
}

func TestMealPlanService_Update_TargetWhilePlannedFoodsExist(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()
	foods := []*entity.PlannedFood{
		{MealPlanID: planID, FoodName: "Oats", Nutrients: entity.Nutrients{Calories: 300}},
		{MealPlanID: planID, FoodName: "Milk", Nutrients: entity.Nutrients{Calories: 120}},
	}

	t.Run("rejects a target that differs from the planned sum", func(t *testing.T) {
		fx := createTestMealPlanService(t)
		stored := &entity.MealPlan{ID: planID, UserID: userID, Name: "Breakfast", TargetCalories: 420, MealOrder: 1}

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txPlanRepo := mockRepo.NewMockMealPlanRepository(t)
			txFoodRepo := mockRepo.NewMockPlannedFoodRepository(t)
			factory.EXPECT().MealPlanRepo().Return(txPlanRepo)
			factory.EXPECT().PlannedFoodRepo().Return(txFoodRepo)

			txPlanRepo.EXPECT().LockByID(ctx, userID, planID).Return(stored, nil)
			txFoodRepo.EXPECT().ListByMealPlan(ctx, userID, planID).Return(foods, nil)
		})

		plan, err := fx.service.Update(ctx, userID, planID, usecase.UpdateMealPlanInput{TargetCalories: ptr(900.0)})

		assert.Nil(t, plan)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Equal(t, 420.0, stored.TargetCalories)
	})

	t.Run("accepts a target equal to the planned sum", func(t *testing.T) {
		fx := createTestMealPlanService(t)
		stored := &entity.MealPlan{ID: planID, UserID: userID, Name: "Breakfast", TargetCalories: 420, MealOrder: 1}

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txPlanRepo := mockRepo.NewMockMealPlanRepository(t)
			txFoodRepo := mockRepo.NewMockPlannedFoodRepository(t)
			factory.EXPECT().MealPlanRepo().Return(txPlanRepo)
			factory.EXPECT().PlannedFoodRepo().Return(txFoodRepo)

			txPlanRepo.EXPECT().LockByID(ctx, userID, planID).Return(stored, nil)
			txFoodRepo.EXPECT().ListByMealPlan(ctx, userID, planID).Return(foods, nil)
			txPlanRepo.EXPECT().Update(ctx, stored).Return(nil)
		})

		plan, err := fx.service.Update(ctx, userID, planID, usecase.UpdateMealPlanInput{
			Name:           ptr("Early breakfast"),
			TargetCalories: ptr(420.0),
		})

		require.NoError(t, err)
		assert.Equal(t, "Early breakfast", plan.Name)
		assert.Equal(t, 420.0, plan.TargetCalories)
	})
}

func TestMealPlanService_Update_OtherUsersPlan(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPlanRepo := mockRepo.NewMockMealPlanRepository(t)
		factory.EXPECT().MealPlanRepo().Return(txPlanRepo)

		txPlanRepo.EXPECT().LockByID(ctx, userID, planID).Return(nil, repository.ErrMealPlanNotFound)
	})

	_, err := fx.service.Update(ctx, userID, planID, usecase.UpdateMealPlanInput{Name: ptr("Mine now")})

	assert.ErrorIs(t, err, domainerrors.ErrMealPlanNotFound)
}

func TestMealPlanService_Update_NegativeTargetSkipsStore(t *testing.T) {
	fx := createTestMealPlanService(t)

	_, err := fx.service.Update(context.Background(), uuid.New(), uuid.New(), usecase.UpdateMealPlanInput{TargetCalories: ptr(-5.0)})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMealPlanService_Delete_CascadesPlannedFoods(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPlanRepo := mockRepo.NewMockMealPlanRepository(t)
		txFoodRepo := mockRepo.NewMockPlannedFoodRepository(t)
		factory.EXPECT().MealPlanRepo().Return(txPlanRepo)
		factory.EXPECT().PlannedFoodRepo().Return(txFoodRepo)

		txPlanRepo.EXPECT().LockByID(ctx, userID, planID).Return(&entity.MealPlan{ID: planID}, nil)
		txFoodRepo.EXPECT().DeleteByMealPlan(ctx, userID, planID).Return(nil)
		txPlanRepo.EXPECT().Delete(ctx, userID, planID).Return(nil)
	})

	require.NoError(t, fx.service.Delete(ctx, userID, planID))
}

func TestMealPlanService_Delete_NotFound(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPlanRepo := mockRepo.NewMockMealPlanRepository(t)
		factory.EXPECT().MealPlanRepo().Return(txPlanRepo)

		txPlanRepo.EXPECT().LockByID(ctx, userID, planID).Return(nil, repository.ErrMealPlanNotFound)
	})

	err := fx.service.Delete(ctx, userID, planID)

	assert.ErrorIs(t, err, domainerrors.ErrMealPlanNotFound)
}
