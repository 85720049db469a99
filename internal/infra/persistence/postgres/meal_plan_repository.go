package postgres

import (
	"context"

	"macrolog/internal/domain/entity"
	"macrolog/internal/domain/repository"
	"macrolog/internal/infra/persistence/model"
	"macrolog/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mealPlanRepository implements the domain.MealPlanRepository interface using GORM.
type mealPlanRepository struct {
	q *query.Query
}

// NewMealPlanRepository is the constructor for mealPlanRepository.
// It returns the repository as a domain.MealPlanRepository interface.
func NewMealPlanRepository(db *gorm.DB) repository.MealPlanRepository {
	return &mealPlanRepository{
		q: query.Use(db),
	}
}

// ListByUser returns all meal plans of the user ordered by meal_order,
// with creation time breaking ties.
func (repo *mealPlanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error) {
	p := repo.q.MealPlanModel
	planMs, err := p.WithContext(ctx).
		Where(p.UserID.Eq(userID)).
		Order(p.MealOrder, p.CreatedAt).
		Find()
	if err != nil {
		return nil, translateError(err, "failed to list meal plans")
	}

	plans := make([]*entity.MealPlan, 0, len(planMs))
	for _, m := range planMs {
		plans = append(plans, toMealPlanDomain(m))
	}

	return plans, nil
}

// FindByID retrieves a single meal plan owned by the user.
// It returns repository.ErrMealPlanNotFound when the plan does not exist or belongs to someone else.
func (repo *mealPlanRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.MealPlan, error) {
	return repo.find(repo.q.MealPlanModel.WithContext(ctx), userID, id)
}

// LockByID reads the meal plan with SELECT ... FOR UPDATE. It only serializes
// anything when called inside a transaction.
func (repo *mealPlanRepository) LockByID(ctx context.Context, userID, id uuid.UUID) (*entity.MealPlan, error) {
	return repo.find(repo.q.MealPlanModel.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID, id)
}

func (repo *mealPlanRepository) find(do query.IMealPlanModelDo, userID, id uuid.UUID) (*entity.MealPlan, error) {
	p := repo.q.MealPlanModel
	planM, err := do.Where(p.ID.Eq(id), p.UserID.Eq(userID)).Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealPlanNotFound
		}

		return nil, translateError(err, "failed to find meal plan")
	}

	return toMealPlanDomain(planM), nil
}

// MaxMealOrder returns the highest meal_order of the user's plans, or 0 when there are none.
func (repo *mealPlanRepository) MaxMealOrder(ctx context.Context, userID uuid.UUID) (int, error) {
	p := repo.q.MealPlanModel

	var maxOrder int
	err := p.WithContext(ctx).
		Where(p.UserID.Eq(userID)).
		UnderlyingDB().
		Select("COALESCE(MAX(meal_order), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, translateError(err, "failed to read max meal order")
	}

	return maxOrder, nil
}

// Create persists a single meal plan.
func (repo *mealPlanRepository) Create(ctx context.Context, plan *entity.MealPlan) error {
	return repo.CreateBatch(ctx, []*entity.MealPlan{plan})
}

// CreateBatch persists several meal plans in one INSERT and copies each
// stored created_at back onto its entity.
func (repo *mealPlanRepository) CreateBatch(ctx context.Context, plans []*entity.MealPlan) error {
	if len(plans) == 0 {
		return nil
	}

	planMs := make([]*model.MealPlanModel, 0, len(plans))
	for _, p := range plans {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		planMs = append(planMs, fromMealPlanDomain(p))
	}

	if err := repo.q.MealPlanModel.WithContext(ctx).Create(planMs...); err != nil {
		return translateError(err, "failed to create meal plans")
	}

	for i, m := range planMs {
		plans[i].CreatedAt = m.CreatedAt
	}

	return nil
}

// Update overwrites the name, target and order of an existing meal plan.
// It returns repository.ErrMealPlanNotFound when no row matched.
func (repo *mealPlanRepository) Update(ctx context.Context, plan *entity.MealPlan) error {
	p := repo.q.MealPlanModel
	info, err := p.WithContext(ctx).
		Where(p.ID.Eq(plan.ID), p.UserID.Eq(plan.UserID)).
		Updates(map[string]any{
			"name":            plan.Name,
			"target_calories": plan.TargetCalories,
			"meal_order":      plan.MealOrder,
		})
	if err != nil {
		return translateError(err, "failed to update meal plan")
	}
	if info.RowsAffected == 0 {
		return repository.ErrMealPlanNotFound
	}

	return nil
}

// UpdateTargetCalories sets only target_calories, used when the planned foods change.
func (repo *mealPlanRepository) UpdateTargetCalories(ctx context.Context, userID, id uuid.UUID, targetCalories float64) error {
	p := repo.q.MealPlanModel
	info, err := p.WithContext(ctx).
		Where(p.ID.Eq(id), p.UserID.Eq(userID)).
		Update(p.TargetCalories, targetCalories)
	if err != nil {
		return translateError(err, "failed to update meal plan target")
	}
	if info.RowsAffected == 0 {
		return repository.ErrMealPlanNotFound
	}

	return nil
}

// Delete removes the meal plan. Its planned foods go with it through the cascading foreign key.
func (repo *mealPlanRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	p := repo.q.MealPlanModel
	info, err := p.WithContext(ctx).
		Where(p.ID.Eq(id), p.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return translateError(err, "failed to delete meal plan")
	}
	if info.RowsAffected == 0 {
		return repository.ErrMealPlanNotFound
	}

	return nil
}

func toMealPlanDomain(m *model.MealPlanModel) *entity.MealPlan {
	return &entity.MealPlan{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		TargetCalories: m.TargetCalories,
		MealOrder:      m.MealOrder,
		IsDefault:      m.IsDefault,
		CreatedAt:      m.CreatedAt,
	}
}

func fromMealPlanDomain(p *entity.MealPlan) *model.MealPlanModel {
	return &model.MealPlanModel{
		ID:             p.ID,
		UserID:         p.UserID,
		Name:           p.Name,
		TargetCalories: p.TargetCalories,
		MealOrder:      p.MealOrder,
		IsDefault:      p.IsDefault,
		CreatedAt:      p.CreatedAt,
	}
}
