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

func createTestCustomFoodService(t *testing.T) (usecase.CustomFoodUsecase, *mockRepo.MockCustomFoodRepository) {
	repo := mockRepo.NewMockCustomFoodRepository(t)

	return NewCustomFoodService(repo, newDiscardLogger()), repo
}

func TestCustomFoodService_Search_TrimsAndLimits(t *testing.T) {
	svc, repo := createTestCustomFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	foods := []*entity.CustomFood{{ID: uuid.New(), FoodName: "Oat milk"}}

	repo.EXPECT().Search(ctx, userID, "oat", 50).Return(foods, nil)

	got, err := svc.Search(ctx, userID, "  oat ")

	require.NoError(t, err)
	assert.Equal(t, foods, got)
}

func TestCustomFoodService_Upsert_Creates(t *testing.T) {
	svc, repo := createTestCustomFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	brand := "Acme"

	repo.EXPECT().FindByName(ctx, userID, "Protein bar").Return(nil, repository.ErrCustomFoodNotFound)
	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CustomFood")).Return(nil)

	food, created, err := svc.Upsert(ctx, userID, usecase.UpsertCustomFoodInput{
		FoodName: " Protein bar ",
		Per100g:  entity.Nutrients{Calories: 380, Protein: 33},
		Brand:    &brand,
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Protein bar", food.FoodName)
	assert.Equal(t, userID, food.UserID)
	assert.Equal(t, &brand, food.Brand)
}

func TestCustomFoodService_Upsert_OverwritesCaseInsensitiveMatch(t *testing.T) {
	svc, repo := createTestCustomFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	brand := "Acme"
	existing := &entity.CustomFood{
		ID:       uuid.New(),
		UserID:   userID,
		FoodName: "protein bar",
		Per100g:  entity.Nutrients{Calories: 350},
		Brand:    &brand,
	}

	repo.EXPECT().FindByName(ctx, userID, "Protein Bar").Return(existing, nil)
	repo.EXPECT().Update(ctx, existing).Return(nil)

	food, created, err := svc.Upsert(ctx, userID, usecase.UpsertCustomFoodInput{
		FoodName: "Protein Bar",
		Per100g:  entity.Nutrients{Calories: 380},
	})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, food.ID)
	assert.Equal(t, "protein bar", food.FoodName)
	assert.Equal(t, 380.0, food.Per100g.Calories)
	require.NotNil(t, food.Brand)
	assert.Equal(t, "Acme", *food.Brand)
}

func TestCustomFoodService_Upsert_Validation(t *testing.T) {
	svc, _ := createTestCustomFoodService(t)

	_, _, err := svc.Upsert(context.Background(), uuid.New(), usecase.UpsertCustomFoodInput{
		FoodName: "Bad",
		Per100g:  entity.Nutrients{Calories: -10},
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomFoodService_Update_NameConflict(t *testing.T) {
	svc, repo := createTestCustomFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()

	repo.EXPECT().FindByID(ctx, userID, id).Return(&entity.CustomFood{ID: id, UserID: userID, FoodName: "Tofu"}, nil)
	repo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrCustomFoodConflict)

	_, err := svc.Update(ctx, userID, id, usecase.UpdateCustomFoodInput{FoodName: ptr("Tempeh")})

	assert.ErrorIs(t, err, domainerrors.ErrCustomFoodConflict)
}

func TestCustomFoodService_Update_PartialFields(t *testing.T) {
	svc, repo := createTestCustomFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()
	stored := &entity.CustomFood{ID: id, UserID: userID, FoodName: "Tofu", Per100g: entity.Nutrients{Calories: 76, Protein: 8}}

	repo.EXPECT().FindByID(ctx, userID, id).Return(stored, nil)
	repo.EXPECT().Update(ctx, stored).Return(nil)

	food, err := svc.Update(ctx, userID, id, usecase.UpdateCustomFoodInput{Fat: ptr(4.8)})

	require.NoError(t, err)
	assert.Equal(t, entity.Nutrients{Calories: 76, Protein: 8, Fat: 4.8}, food.Per100g)
}

func TestCustomFoodService_Delete_NotFound(t *testing.T) {
	svc, repo := createTestCustomFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()

	repo.EXPECT().Delete(ctx, userID, id).Return(repository.ErrCustomFoodNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, userID, id), domainerrors.ErrCustomFoodNotFound)
}
