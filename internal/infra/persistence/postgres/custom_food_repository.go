package postgres

import (
	"context"
	"strings"
	"time"

	"macrolog/internal/domain/entity"
	"macrolog/internal/domain/repository"
	"macrolog/internal/infra/persistence/model"
	"macrolog/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// customFoodRepository implements the domain.CustomFoodRepository interface using GORM.
type customFoodRepository struct {
	q *query.Query
}

// NewCustomFoodRepository is the constructor for customFoodRepository.
// It returns the repository as a domain.CustomFoodRepository interface.
func NewCustomFoodRepository(db *gorm.DB) repository.CustomFoodRepository {
	return &customFoodRepository{
		q: query.Use(db),
	}
}

// Search returns up to limit of the user's custom foods whose name contains term,
// case-insensitively and ordered by name. A blank term lists all of them.
func (repo *customFoodRepository) Search(ctx context.Context, userID uuid.UUID, term string, limit int) ([]*entity.CustomFood, error) {
	f := repo.q.CustomFoodModel
	conds := []gen.Condition{f.UserID.Eq(userID)}
	if term = strings.TrimSpace(term); term != "" {
		// gen's Like is case-sensitive on Postgres.
		conds = append(conds, gen.Cond(clause.Expr{
			SQL:  "food_name ILIKE ?",
			Vars: []any{"%" + likeEscaper.Replace(term) + "%"},
		})...)
	}

	foodMs, err := f.WithContext(ctx).
		Where(conds...).
		Order(f.FoodName).
		Limit(limit).
		Find()
	if err != nil {
		return nil, translateError(err, "failed to search custom foods")
	}

	foods := make([]*entity.CustomFood, 0, len(foodMs))
	for _, m := range foodMs {
		foods = append(foods, toCustomFoodDomain(m))
	}

	return foods, nil
}

// FindByID retrieves a single custom food owned by the user.
func (repo *customFoodRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.CustomFood, error) {
	f := repo.q.CustomFoodModel

	return repo.take(ctx, f.ID.Eq(id), f.UserID.Eq(userID))
}

// FindByName retrieves the user's custom food whose name equals name ignoring case.
func (repo *customFoodRepository) FindByName(ctx context.Context, userID uuid.UUID, name string) (*entity.CustomFood, error) {
	conds := append(
		[]gen.Condition{repo.q.CustomFoodModel.UserID.Eq(userID)},
		gen.Cond(clause.Expr{SQL: "LOWER(food_name) = LOWER(?)", Vars: []any{name}})...,
	)

	return repo.take(ctx, conds...)
}

func (repo *customFoodRepository) take(ctx context.Context, conds ...gen.Condition) (*entity.CustomFood, error) {
	foodM, err := repo.q.CustomFoodModel.WithContext(ctx).Where(conds...).Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomFoodNotFound
		}

		return nil, translateError(err, "failed to find custom food")
	}

	return toCustomFoodDomain(foodM), nil
}

// Create persists a new custom food. A name already used by the user
// (ignoring case) is reported as repository.ErrCustomFoodConflict.
func (repo *customFoodRepository) Create(ctx context.Context, food *entity.CustomFood) error {
	if food.ID == uuid.Nil {
		food.ID = uuid.New()
	}

	foodM := fromCustomFoodDomain(food)
	if err := repo.q.CustomFoodModel.WithContext(ctx).Create(foodM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCustomFoodConflict
		}

		return translateError(err, "failed to create custom food")
	}

	food.CreatedAt = foodM.CreatedAt

	return nil
}

// Update overwrites the name, nutrients and brand of an existing custom food.
func (repo *customFoodRepository) Update(ctx context.Context, food *entity.CustomFood) error {
	f := repo.q.CustomFoodModel
	info, err := f.WithContext(ctx).
		Where(f.ID.Eq(food.ID), f.UserID.Eq(food.UserID)).
		Updates(map[string]any{
			"food_name":  food.FoodName,
			"calories":   food.Per100g.Calories,
			"protein":    food.Per100g.Protein,
			"carbs":      food.Per100g.Carbs,
			"fat":        food.Per100g.Fat,
			"brand":      food.Brand,
			"updated_at": time.Now(),
		})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCustomFoodConflict
		}

		return translateError(err, "failed to update custom food")
	}
	if info.RowsAffected == 0 {
		return repository.ErrCustomFoodNotFound
	}

	return nil
}

// Delete removes one custom food of the user.
func (repo *customFoodRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	f := repo.q.CustomFoodModel
	info, err := f.WithContext(ctx).
		Where(f.ID.Eq(id), f.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return translateError(err, "failed to delete custom food")
	}
	if info.RowsAffected == 0 {
		return repository.ErrCustomFoodNotFound
	}

	return nil
}

func toCustomFoodDomain(m *model.CustomFoodModel) *entity.CustomFood {
	return &entity.CustomFood{
		ID:       m.ID,
		UserID:   m.UserID,
		FoodName: m.FoodName,
		Per100g: entity.Nutrients{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
		},
		Brand:     m.Brand,
		CreatedAt: m.CreatedAt,
	}
}

func fromCustomFoodDomain(f *entity.CustomFood) *model.CustomFoodModel {
	return &model.CustomFoodModel{
		ID:        f.ID,
		UserID:    f.UserID,
		FoodName:  f.FoodName,
		Calories:  f.Per100g.Calories,
		Protein:   f.Per100g.Protein,
		Carbs:     f.Per100g.Carbs,
		Fat:       f.Per100g.Fat,
		Brand:     f.Brand,
		CreatedAt: f.CreatedAt,
	}
}
