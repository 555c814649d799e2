package domain

import (
	"errors"
)

var (
	MessageSuccessGetMealPlan      = "meal plan retrieved successfully"
	MessageSuccessSaveMealPlan     = "meal plan saved successfully"
	MessageSuccessGetMeal          = "meal retrieved successfully"
	MessageSuccessUpdateMeal       = "meal updated successfully"
	MessageSuccessClearMeal        = "meal cleared successfully"
	MessageSuccessGetMealNutrition = "meal nutrition retrieved successfully"
	MessageSuccessGetDayNutrition  = "day nutrition retrieved successfully"
	MessageSuccessShareMealPlan    = "meal plan shared successfully"
	MessageSuccessAnalyzeMeal      = "meal analyzed successfully"

	MessageFailedGetMealPlan     = "failed to retrieve meal plan"
	MessageFailedSaveMealPlan    = "failed to save meal plan"
	MessageFailedUpdateMeal      = "failed to update meal"
	MessageFailedGetNutrition    = "failed to calculate nutrition"
	MessageFailedShareMealPlan   = "failed to share meal plan"
	MessageFailedAnalyzeMeal     = "failed to analyze meal"
	MessageFailedInvalidNumerics = "request contains values that are not numbers"
	MessageFailedInvalidDocument = "request body does not match the expected shape"

	ErrNotACondiment   = errors.New("food is not a condiment")
	ErrInvalidServings = errors.New("servings must be greater than zero")
)

type (
	SelectFoodRequest struct {
		FoodID string `json:"food_id" validate:"required,uuid"`
	}

	ToggleCondimentRequest struct {
		FoodID   string  `json:"food_id" validate:"required,uuid"`
		Servings float64 `json:"servings" validate:"gte=0"`
	}

	UpdateServingsRequest struct {
		Servings float64 `json:"servings" validate:"gt=0"`
	}

	ShareMealPlanRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	MealNutritionResponse struct {
		Day    Weekday         `json:"day"`
		Meal   MealType        `json:"meal"`
		Totals NutritionTotals `json:"totals"`
	}

	DayNutritionResponse struct {
		Day      Weekday                      `json:"day"`
		Totals   NutritionTotals              `json:"totals"`
		Meals    map[MealType]NutritionTotals `json:"meals"`
		Goals    NutritionGoals               `json:"goals"`
		Progress DailyProgress                `json:"progress"`
	}
)
