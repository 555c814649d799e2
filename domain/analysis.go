package domain

import (
	"errors"
)

var (
	ErrAnalysisUnavailable = errors.New("meal analysis is not configured")
	ErrInvalidAnalysis     = errors.New("meal analysis returned an unusable response")
)

type (
	// MealAnalysis is the model's own estimate for a meal.
	MealAnalysis struct {
		Calories    float64  `json:"calories"`
		Protein     float64  `json:"protein"`
		Carbs       float64  `json:"carbs"`
		Fat         float64  `json:"fat"`
		Summary     string   `json:"summary"`
		Suggestions []string `json:"suggestions"`
	}

	AnalyzeMealResponse struct {
		Day      Weekday         `json:"day"`
		Meal     MealType        `json:"meal"`
		Computed NutritionTotals `json:"computed"`
		Estimate MealAnalysis    `json:"estimate"`
	}
)
