package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tkloetzk/mealplanner-sub001/entities"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"kid", &entities.Kid{}},
		{"food", &entities.Food{}},
		{"meal plan", &entities.MealPlan{}},
		{"meal history", &entities.MealHistory{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migrate %s table: %w", m.name, err)
		}
	}
	return nil
}
