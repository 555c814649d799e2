package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRecordMeal = "meal recorded successfully"
	MessageSuccessGetHistory = "meal history retrieved successfully"
	MessageSuccessGetSummary = "daily summary retrieved successfully"

	MessageFailedRecordMeal = "failed to record meal"
	MessageFailedGetHistory = "failed to retrieve meal history"
	MessageFailedGetSummary = "failed to retrieve daily summary"

	ErrInvalidDateRange = errors.New("from date must not be after to date")
)

type (
	// RecordMealRequest carries the selection as raw JSON so numeric fields
	// can be coerced before decoding.
	RecordMealRequest struct {
		Date      string         `json:"date" validate:"required,datetime=2006-01-02"`
		Meal      MealType       `json:"meal" validate:"required,mealtype"`
		Selection map[string]any `json:"selection" validate:"required"`
		Consumed  bool           `json:"consumed"`
		Notes     string         `json:"notes" validate:"max=500"`
	}

	MealHistoryResponse struct {
		ID        string          `json:"id"`
		KidID     string          `json:"kid_id"`
		Date      string          `json:"date"`
		Meal      MealType        `json:"meal"`
		Selection MealSelection   `json:"selection"`
		Totals    NutritionTotals `json:"totals"`
		Consumed  bool            `json:"consumed"`
		Notes     string          `json:"notes,omitempty"`
		UpdatedAt time.Time       `json:"updated_at"`
	}

	DailySummaryResponse struct {
		Date     string                       `json:"date"`
		Meals    map[MealType]NutritionTotals `json:"meals"`
		Totals   NutritionTotals              `json:"totals"`
		Goals    NutritionGoals               `json:"goals"`
		Progress DailyProgress                `json:"progress"`
	}
)
