package history

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tkloetzk/mealplanner-sub001/entities"
)

type (
	HistoryRepository interface {
		// UpsertMeal writes the entry for (kid, date, meal), replacing an
		// existing one.
		UpsertMeal(ctx context.Context, entry *entities.MealHistory) error
		GetMeal(ctx context.Context, kidID string, date time.Time, meal string) (*entities.MealHistory, error)
		GetHistory(ctx context.Context, kidID string, from, to time.Time) ([]*entities.MealHistory, error)
	}

	historyRepository struct {
		db *gorm.DB
	}
)

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) UpsertMeal(ctx context.Context, entry *entities.MealHistory) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "kid_id"}, {Name: "date"}, {Name: "meal"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"selection", "consumed", "notes", "calories", "protein", "carbs", "fat", "updated_at",
		}),
	}).Create(entry).Error
}

func (r *historyRepository) GetMeal(ctx context.Context, kidID string, date time.Time, meal string) (*entities.MealHistory, error) {
	var entry entities.MealHistory
	if err := r.db.WithContext(ctx).
		Where("kid_id = ? AND date = ? AND meal = ?", kidID, date, meal).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *historyRepository) GetHistory(ctx context.Context, kidID string, from, to time.Time) ([]*entities.MealHistory, error) {
	var entries []*entities.MealHistory
	if err := r.db.WithContext(ctx).
		Where("kid_id = ? AND date BETWEEN ? AND ?", kidID, from, to).
		Order("date asc, created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
