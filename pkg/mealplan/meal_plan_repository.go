package mealplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/entities"
	"github.com/tkloetzk/mealplanner-sub001/pkg/nutrition"
)

type (
	// MealPlanRepository stores one partial week plan per kid. A kid without
	// a stored plan reads as an empty partial plan.
	MealPlanRepository interface {
		GetPlan(ctx context.Context, kidID string) (domain.PartialWeekPlan, error)
		ReplacePlan(ctx context.Context, kidID string, plan domain.PartialWeekPlan) error
		// UpdatePlan applies fn to the stored plan inside a transaction that
		// holds a row lock, and stores the result.
		UpdatePlan(ctx context.Context, kidID string, fn func(domain.PartialWeekPlan) (domain.PartialWeekPlan, error)) (domain.PartialWeekPlan, error)
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) GetPlan(ctx context.Context, kidID string) (domain.PartialWeekPlan, error) {
	var row entities.MealPlan
	if err := r.db.WithContext(ctx).Where("kid_id = ?", kidID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PartialWeekPlan{}, nil
		}
		return nil, err
	}
	return decodePlan(row.Plan)
}

func (r *mealPlanRepository) ReplacePlan(ctx context.Context, kidID string, plan domain.PartialWeekPlan) error {
	row, err := newRow(kidID, plan)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kid_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"plan", "updated_at"}),
	}).Create(row).Error
}

func (r *mealPlanRepository) UpdatePlan(ctx context.Context, kidID string, fn func(domain.PartialWeekPlan) (domain.PartialWeekPlan, error)) (domain.PartialWeekPlan, error) {
	var updated domain.PartialWeekPlan

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seed, err := newRow(kidID, domain.PartialWeekPlan{})
		if err != nil {
			return err
		}
		// A first edit has no row to lock, so make sure one exists. Concurrent
		// first edits then serialize on the row lock below.
		if err := seedPlan(tx, seed).Error; err != nil {
			return err
		}

		var row entities.MealPlan
		if err := lockPlan(tx, kidID, &row).Error; err != nil {
			return err
		}
		current, err := decodePlan(row.Plan)
		if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		doc, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode meal plan: %w", err)
		}
		row.Plan = datatypes.JSON(doc)
		if err := tx.Save(&row).Error; err != nil {
			return err
		}

		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// seedPlan inserts row unless the kid already has a plan.
func seedPlan(tx *gorm.DB, row *entities.MealPlan) *gorm.DB {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kid_id"}},
		DoNothing: true,
	}).Create(row)
}

func lockPlan(tx *gorm.DB, kidID string, row *entities.MealPlan) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("kid_id = ?", kidID).First(row)
}

func newRow(kidID string, plan domain.PartialWeekPlan) (*entities.MealPlan, error) {
	kidUUID, err := uuid.Parse(kidID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	doc, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("encode meal plan: %w", err)
	}
	return &entities.MealPlan{ID: uuid.New(), KidID: kidUUID, Plan: datatypes.JSON(doc)}, nil
}

// decodePlan runs stored documents through the same coercion as request
// bodies, so rows written with string numbers still load.
func decodePlan(doc datatypes.JSON) (domain.PartialWeekPlan, error) {
	if len(doc) == 0 {
		return domain.PartialWeekPlan{}, nil
	}
	var raw any
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("decode stored meal plan: %w", err)
	}
	return nutrition.DecodePartialWeekPlan(raw)
}
