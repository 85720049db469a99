package impl

import (
	"context"
	"testing"

	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/repository"
	"macrolog/internal/domain/service"
	mockRepo "macrolog/internal/mocks/repository"
	mockSvc "macrolog/internal/mocks/service"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// plannedFoodServiceFixtures holds all test dependencies for planned food service tests.
type plannedFoodServiceFixtures struct {
	service         usecase.PlannedFoodUsecase
	txManager       *mockRepo.MockTransactionManager
	plannedFoodRepo *mockRepo.MockPlannedFoodRepository
	publisher       *mockSvc.MockEventPublisher
}

func createTestPlannedFoodService(t *testing.T) plannedFoodServiceFixtures {
	f := plannedFoodServiceFixtures{
		txManager:       mockRepo.NewMockTransactionManager(t),
		plannedFoodRepo: mockRepo.NewMockPlannedFoodRepository(t),
		publisher:       mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewPlannedFoodService(PlannedFoodServiceParams{
		TxManager:       f.txManager,
		PlannedFoodRepo: f.plannedFoodRepo,
		Publisher:       f.publisher,
		Logger:          newDiscardLogger(),
	})

	return f
}

// mealPlanStore is an in-memory stand-in for the meal plan and planned food
// tables, so a sequence of mutations can be checked against the stored target.
type mealPlanStore struct {
	plan  *entity.MealPlan
	foods []*entity.PlannedFood
}

func (s *mealPlanStore) wire(t *testing.T, factory *mockRepo.MockRepositoryFactory) {
	planRepo := mockRepo.NewMockMealPlanRepository(t)
	foodRepo := mockRepo.NewMockPlannedFoodRepository(t)

	factory.EXPECT().MealPlanRepo().Return(planRepo)
	factory.EXPECT().PlannedFoodRepo().Return(foodRepo)

	planRepo.EXPECT().LockByID(mock.Anything, s.plan.UserID, s.plan.ID).Return(s.plan, nil)
	planRepo.EXPECT().FindByID(mock.Anything, s.plan.UserID, s.plan.ID).
		RunAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*entity.MealPlan, error) {
			copied := *s.plan
			return &copied, nil
		})
	planRepo.EXPECT().UpdateTargetCalories(mock.Anything, s.plan.UserID, s.plan.ID, mock.AnythingOfType("float64")).
		RunAndReturn(func(_ context.Context, _, _ uuid.UUID, target float64) error {
			s.plan.TargetCalories = target
			return nil
		}).Maybe()

	foodRepo.EXPECT().ListByMealPlan(mock.Anything, s.plan.UserID, s.plan.ID).
		RunAndReturn(func(context.Context, uuid.UUID, uuid.UUID) ([]*entity.PlannedFood, error) {
			return append([]*entity.PlannedFood(nil), s.foods...), nil
		})
	foodRepo.EXPECT().FindByID(mock.Anything, s.plan.UserID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, id uuid.UUID) (*entity.PlannedFood, error) {
			for _, f := range s.foods {
				if f.ID == id {
					copied := *f
					return &copied, nil
				}
			}
			return nil, repository.ErrPlannedFoodNotFound
		}).Maybe()
	foodRepo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, food *entity.PlannedFood) error {
			food.ID = uuid.New()
			s.foods = append(s.foods, food)
			return nil
		}).Maybe()
	foodRepo.EXPECT().Update(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, food *entity.PlannedFood) error {
			for i, f := range s.foods {
				if f.ID == food.ID {
					s.foods[i] = food
				}
			}
			return nil
		}).Maybe()
	foodRepo.EXPECT().Delete(mock.Anything, s.plan.UserID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, id uuid.UUID) error {
			for i, f := range s.foods {
				if f.ID == id {
					s.foods = append(s.foods[:i], s.foods[i+1:]...)
					return nil
				}
			}
			return repository.ErrPlannedFoodNotFound
		}).Maybe()
}

func (s *mealPlanStore) expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager) {
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) { s.wire(t, factory) })
}

func TestPlannedFoodService_TargetTracksPlannedSum(t *testing.T) {
	fx := createTestPlannedFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	store := &mealPlanStore{plan: &entity.MealPlan{ID: uuid.New(), UserID: userID, Name: "Lunch", TargetCalories: 600}}

	fx.publisher.EXPECT().PublishMealEvent(ctx, mock.MatchedBy(func(e *service.MealEvent) bool {
		return e.Type == service.MealEventTargetRecomputed
	})).Return(nil)

	var ids []uuid.UUID
	for _, kcal := range []float64{100, 200, 50} {
		store.expectTx(t, fx.txManager)

		res, err := fx.service.Create(ctx, userID, usecase.CreatePlannedFoodInput{
			MealPlanID:    store.plan.ID,
			FoodName:      "item",
			QuantityGrams: 100,
			Calories:      kcal,
		})
		require.NoError(t, err)
		ids = append(ids, res.Food.ID)
		assert.Equal(t, store.plan.TargetCalories, res.MealPlan.TargetCalories)
	}
	assert.Equal(t, 350.0, store.plan.TargetCalories)

	store.expectTx(t, fx.txManager)
	res, err := fx.service.Update(ctx, userID, ids[1], usecase.UpdatePlannedFoodInput{Calories: ptr(250.0)})
	require.NoError(t, err)
	assert.Equal(t, 400.0, res.MealPlan.TargetCalories)
	assert.Equal(t, 250.0, res.Food.Calories)
	assert.Equal(t, "item", res.Food.FoodName)

	store.expectTx(t, fx.txManager)
	plan, err := fx.service.Delete(ctx, userID, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 300.0, plan.TargetCalories)

	store.expectTx(t, fx.txManager)
	_, err = fx.service.Delete(ctx, userID, ids[1])
	require.NoError(t, err)

	store.expectTx(t, fx.txManager)
	plan, err = fx.service.Delete(ctx, userID, ids[2])
	require.NoError(t, err)
	assert.Equal(t, 50.0, plan.TargetCalories, "the last computed sum survives removing every planned food")
	assert.Empty(t, store.foods)
}

func TestPlannedFoodService_Create_UnknownMealPlan(t *testing.T) {
	fx := createTestPlannedFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPlanRepo := mockRepo.NewMockMealPlanRepository(t)
		factory.EXPECT().MealPlanRepo().Return(txPlanRepo)
		txPlanRepo.EXPECT().LockByID(ctx, userID, planID).Return(nil, repository.ErrMealPlanNotFound)
	})

	_, err := fx.service.Create(ctx, userID, usecase.CreatePlannedFoodInput{
		MealPlanID: planID, FoodName: "Oats", QuantityGrams: 40, Calories: 150,
	})

	assert.ErrorIs(t, err, domainerrors.ErrMealPlanNotFound)
}

func TestPlannedFoodService_Create_Validation(t *testing.T) {
	fx := createTestPlannedFoodService(t)

	_, err := fx.service.Create(context.Background(), uuid.New(), usecase.CreatePlannedFoodInput{
		MealPlanID: uuid.New(), FoodName: "Oats", QuantityGrams: 40, Calories: 150, Fat: -1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPlannedFoodService_Update_NotFound(t *testing.T) {
	fx := createTestPlannedFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txFoodRepo := mockRepo.NewMockPlannedFoodRepository(t)
		factory.EXPECT().PlannedFoodRepo().Return(txFoodRepo)
		txFoodRepo.EXPECT().FindByID(ctx, userID, id).Return(nil, repository.ErrPlannedFoodNotFound)
	})

	_, err := fx.service.Update(ctx, userID, id, usecase.UpdatePlannedFoodInput{Calories: ptr(10.0)})

	assert.ErrorIs(t, err, domainerrors.ErrPlannedFoodNotFound)
}

func TestPlannedFoodService_List(t *testing.T) {
	fx := createTestPlannedFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()
	foods := []*entity.PlannedFood{{ID: uuid.New(), MealPlanID: planID}}

	fx.plannedFoodRepo.EXPECT().ListByMealPlan(ctx, userID, planID).Return(foods, nil)
	fx.plannedFoodRepo.EXPECT().ListByUser(ctx, userID).Return(foods, nil)

	byPlan, err := fx.service.List(ctx, userID, &planID)
	require.NoError(t, err)
	assert.Equal(t, foods, byPlan)

	all, err := fx.service.List(ctx, userID, nil)
	require.NoError(t, err)
	assert.Equal(t, foods, all)
}
