package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/pkg/mealplan"
)

type fakeMealPlanService struct {
	mealplan.MealPlanService
	sel domain.MealSelection
	err error
}

func (f *fakeMealPlanService) GetMealSelection(context.Context, string, string, string, string) (domain.MealSelection, error) {
	return f.sel, f.err
}

type fakeAnalyzer struct {
	got    domain.NutritionTotals
	answer domain.MealAnalysis
	err    error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ domain.MealSelection, totals domain.NutritionTotals) (domain.MealAnalysis, error) {
	f.got = totals
	return f.answer, f.err
}

func TestAnalyzeMeal(t *testing.T) {
	analyzer := &fakeAnalyzer{answer: domain.MealAnalysis{Calories: 210, Summary: "ok"}}
	svc := NewAnalysisService(&fakeMealPlanService{sel: sampleMeal()}, analyzer, zap.NewNop())

	res, err := svc.AnalyzeMeal(context.Background(), "kid", "monday", "lunch", "owner")
	require.NoError(t, err)

	want := domain.NutritionTotals{Calories: 200, Protein: 6, Carbs: 1, Fat: 18}
	assert.Equal(t, domain.Monday, res.Day)
	assert.Equal(t, domain.MealLunch, res.Meal)
	assert.Equal(t, want, res.Computed)
	assert.Equal(t, want, analyzer.got)
	assert.Equal(t, 210.0, res.Estimate.Calories)
}

func TestAnalyzeMealErrors(t *testing.T) {
	ctx := context.Background()

	svc := NewAnalysisService(&fakeMealPlanService{err: domain.ErrUnauthorizedKidAccess}, &fakeAnalyzer{}, zap.NewNop())
	_, err := svc.AnalyzeMeal(ctx, "kid", "monday", "lunch", "stranger")
	assert.ErrorIs(t, err, domain.ErrUnauthorizedKidAccess)

	svc = NewAnalysisService(&fakeMealPlanService{sel: sampleMeal()}, &fakeAnalyzer{err: domain.ErrAnalysisUnavailable}, zap.NewNop())
	_, err = svc.AnalyzeMeal(ctx, "kid", "monday", "lunch", "owner")
	assert.True(t, errors.Is(err, domain.ErrAnalysisUnavailable))
}
