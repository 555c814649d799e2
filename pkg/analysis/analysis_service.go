package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/pkg/mealplan"
	"github.com/tkloetzk/mealplanner-sub001/pkg/nutrition"
)

type (
	AnalysisService interface {
		AnalyzeMeal(ctx context.Context, kidID, day, meal string, userID string) (domain.AnalyzeMealResponse, error)
	}

	analysisService struct {
		mealPlanService mealplan.MealPlanService
		analyzer        MealAnalyzer
		log             *zap.Logger
	}
)

func NewAnalysisService(mealPlanService mealplan.MealPlanService, analyzer MealAnalyzer, log *zap.Logger) AnalysisService {
	return &analysisService{
		mealPlanService: mealPlanService,
		analyzer:        analyzer,
		log:             log,
	}
}

// AnalyzeMeal returns the model's estimate for a planned meal next to the
// totals computed from the catalog.
func (s *analysisService) AnalyzeMeal(ctx context.Context, kidID, day, meal string, userID string) (domain.AnalyzeMealResponse, error) {
	sel, err := s.mealPlanService.GetMealSelection(ctx, kidID, day, meal, userID)
	if err != nil {
		return domain.AnalyzeMealResponse{}, err
	}

	totals := nutrition.Totals(sel)
	estimate, err := s.analyzer.Analyze(ctx, sel, totals)
	if err != nil {
		s.log.Warn("meal analysis failed", zap.String("kid_id", kidID), zap.String("day", day), zap.String("meal", meal), zap.Error(err))
		return domain.AnalyzeMealResponse{}, err
	}

	return domain.AnalyzeMealResponse{
		Day:      domain.Weekday(day),
		Meal:     domain.MealType(meal),
		Computed: totals,
		Estimate: estimate,
	}, nil
}
