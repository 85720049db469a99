package postgres

import (
	"context"

	"macrolog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const customFoodNameIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_custom_foods_user_lower_name ON custom_foods (user_id, LOWER(food_name))`

// Migrate creates or updates the schema. It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	if err := db.Exec(customFoodNameIndex).Error; err != nil {
		return errors.Wrap(err, "create custom food name index")
	}

	return nil
}
