// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"macrolog/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

func (f *gormRepositoryFactory) DailyLogRepo() repository.DailyLogRepository {
	return NewDailyLogRepository(f.tx)
}

func (f *gormRepositoryFactory) FoodEntryRepo() repository.FoodEntryRepository {
	return NewFoodEntryRepository(f.tx)
}

func (f *gormRepositoryFactory) MealPlanRepo() repository.MealPlanRepository {
	return NewMealPlanRepository(f.tx)
}

func (f *gormRepositoryFactory) PlannedFoodRepo() repository.PlannedFoodRepository {
	return NewPlannedFoodRepository(f.tx)
}

func (f *gormRepositoryFactory) CustomFoodRepo() repository.CustomFoodRepository {
	return NewCustomFoodRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return translateError(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so the recover middleware sees it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Keep the business error; the rollback failure is only context.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return translateError(err, "failed to commit transaction")
	}

	return nil
}
