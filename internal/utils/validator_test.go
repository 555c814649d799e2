package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkloetzk/mealplanner-sub001/domain"
)

func TestNewValidatorEnumerations(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Var("condiments", "category"))
	assert.Error(t, v.Var("desserts", "category"))
	assert.NoError(t, v.Var("sunday", "weekday"))
	assert.Error(t, v.Var("Sunday", "weekday"))
	assert.NoError(t, v.Var("snack", "mealtype"))
	assert.Error(t, v.Var("brunch", "mealtype"))
}

func TestNewValidatorRequests(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(domain.FoodRequest{Name: "Egg", Category: domain.CategoryProteins, Upc: "012345678905"}))
	assert.Error(t, v.Struct(domain.FoodRequest{Name: "Egg", Category: domain.CategoryProteins, Upc: "12ab"}))
	assert.Error(t, v.Struct(domain.RecordMealRequest{Date: "2026-02-30", Meal: domain.MealLunch, Selection: map[string]any{}}))
	assert.NoError(t, v.Struct(domain.RecordMealRequest{Date: "2026-02-28", Meal: domain.MealLunch, Selection: map[string]any{}}))
}
