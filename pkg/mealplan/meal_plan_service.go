package mealplan

import (
	"context"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/internal/utils/mailing"
	"github.com/tkloetzk/mealplanner-sub001/pkg/food"
	"github.com/tkloetzk/mealplanner-sub001/pkg/kid"
	"github.com/tkloetzk/mealplanner-sub001/pkg/nutrition"
)

type (
	MealPlanService interface {
		GetWeekPlan(ctx context.Context, kidID string, userID string) (domain.WeekPlan, error)
		SaveWeekPlan(ctx context.Context, kidID string, raw any, userID string) (domain.WeekPlan, error)

		GetMealSelection(ctx context.Context, kidID, day, meal string, userID string) (domain.MealSelection, error)
		SelectFood(ctx context.Context, kidID, day, meal, foodID string, userID string) (domain.MealSelection, error)
		ToggleCondiment(ctx context.Context, kidID, day, meal, foodID string, servings float64, userID string) (domain.MealSelection, error)
		UpdateCondimentServings(ctx context.Context, kidID, day, meal, foodID string, servings float64, userID string) (domain.MealSelection, error)
		ClearMeal(ctx context.Context, kidID, day, meal string, userID string) (domain.MealSelection, error)

		GetMealNutrition(ctx context.Context, kidID, day, meal string, userID string) (domain.MealNutritionResponse, error)
		GetDayNutrition(ctx context.Context, kidID, day string, userID string) (domain.DayNutritionResponse, error)

		ShareWeekPlan(ctx context.Context, kidID string, email string, userID string) error
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		kidService         kid.KidService
		foodService        food.FoodService
		mailer             mailing.Mailer
		log                *zap.Logger
	}
)

func NewMealPlanService(
	mealPlanRepository MealPlanRepository,
	kidService kid.KidService,
	foodService food.FoodService,
	mailer mailing.Mailer,
	log *zap.Logger,
) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		kidService:         kidService,
		foodService:        foodService,
		mailer:             mailer,
		log:                log,
	}
}

func (s *mealPlanService) GetWeekPlan(ctx context.Context, kidID string, userID string) (domain.WeekPlan, error) {
	if err := s.kidService.Authorize(ctx, kidID, userID); err != nil {
		return domain.WeekPlan{}, err
	}
	return s.loadWeekPlan(ctx, kidID)
}

// SaveWeekPlan replaces the stored plan with the weekdays present in raw.
func (s *mealPlanService) SaveWeekPlan(ctx context.Context, kidID string, raw any, userID string) (domain.WeekPlan, error) {
	if err := s.kidService.Authorize(ctx, kidID, userID); err != nil {
		return domain.WeekPlan{}, err
	}

	partial, err := nutrition.DecodePartialWeekPlan(raw)
	if err != nil {
		return domain.WeekPlan{}, err
	}
	if err := s.mealPlanRepository.ReplacePlan(ctx, kidID, partial); err != nil {
		return domain.WeekPlan{}, err
	}

	s.log.Info("meal plan saved", zap.String("kid_id", kidID), zap.Int("days", len(partial)))
	return nutrition.Reconcile(partial, nutrition.DefaultWeekPlan()), nil
}

func (s *mealPlanService) GetMealSelection(ctx context.Context, kidID, day, meal string, userID string) (domain.MealSelection, error) {
	d, m, err := parseSlot(day, meal)
	if err != nil {
		return domain.MealSelection{}, err
	}
	if err := s.kidService.Authorize(ctx, kidID, userID); err != nil {
		return domain.MealSelection{}, err
	}

	plan, err := s.loadWeekPlan(ctx, kidID)
	if err != nil {
		return domain.MealSelection{}, err
	}
	return *plan.Day(d).Meal(m), nil
}

func (s *mealPlanService) SelectFood(ctx context.Context, kidID, day, meal, foodID string, userID string) (domain.MealSelection, error) {
	f, err := s.foodService.GetFood(ctx, foodID)
	if err != nil {
		return domain.MealSelection{}, err
	}
	return s.updateMeal(ctx, kidID, day, meal, userID, func(sel domain.MealSelection) (domain.MealSelection, error) {
		return nutrition.SelectFood(sel, f), nil
	})
}

func (s *mealPlanService) ToggleCondiment(ctx context.Context, kidID, day, meal, foodID string, servings float64, userID string) (domain.MealSelection, error) {
	f, err := s.foodService.GetFood(ctx, foodID)
	if err != nil {
		return domain.MealSelection{}, err
	}
	if f.Category != domain.CategoryCondiments {
		return domain.MealSelection{}, domain.ErrNotACondiment
	}
	return s.updateMeal(ctx, kidID, day, meal, userID, func(sel domain.MealSelection) (domain.MealSelection, error) {
		return nutrition.ToggleCondiment(sel, f, servings), nil
	})
}

func (s *mealPlanService) UpdateCondimentServings(ctx context.Context, kidID, day, meal, foodID string, servings float64, userID string) (domain.MealSelection, error) {
	if !(servings > 0) || math.IsInf(servings, 0) {
		return domain.MealSelection{}, domain.ErrInvalidServings
	}
	return s.updateMeal(ctx, kidID, day, meal, userID, func(sel domain.MealSelection) (domain.MealSelection, error) {
		return nutrition.UpdateCondimentServings(sel, foodID, servings), nil
	})
}

func (s *mealPlanService) ClearMeal(ctx context.Context, kidID, day, meal string, userID string) (domain.MealSelection, error) {
	return s.updateMeal(ctx, kidID, day, meal, userID, func(domain.MealSelection) (domain.MealSelection, error) {
		return nutrition.EmptyMealSelection(), nil
	})
}

func (s *mealPlanService) GetMealNutrition(ctx context.Context, kidID, day, meal string, userID string) (domain.MealNutritionResponse, error) {
	sel, err := s.GetMealSelection(ctx, kidID, day, meal, userID)
	if err != nil {
		return domain.MealNutritionResponse{}, err
	}
	return domain.MealNutritionResponse{
		Day:    domain.Weekday(day),
		Meal:   domain.MealType(meal),
		Totals: nutrition.Totals(sel),
	}, nil
}

// GetDayNutrition loads the kid's goals and plan concurrently and reports the
// day's totals and progress.
func (s *mealPlanService) GetDayNutrition(ctx context.Context, kidID, day string, userID string) (domain.DayNutritionResponse, error) {
	d, err := domain.ParseWeekday(day)
	if err != nil {
		return domain.DayNutritionResponse{}, err
	}

	var (
		goals domain.NutritionGoals
		plan  domain.WeekPlan
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		goals, err = s.kidService.GetGoals(gctx, kidID, userID)
		return err
	})
	g.Go(func() error {
		var err error
		plan, err = s.loadWeekPlan(gctx, kidID)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DayNutritionResponse{}, err
	}

	meals := plan.Day(d)
	perMeal := make(map[domain.MealType]domain.NutritionTotals, len(domain.MealTypes))
	for _, m := range domain.MealTypes {
		perMeal[m] = nutrition.Totals(*meals.Meal(m))
	}
	totals := nutrition.DayTotals(*meals)

	return domain.DayNutritionResponse{
		Day:      d,
		Totals:   totals,
		Meals:    perMeal,
		Goals:    goals,
		Progress: nutrition.NewDailyProgress(totals, goals),
	}, nil
}

func (s *mealPlanService) ShareWeekPlan(ctx context.Context, kidID string, email string, userID string) error {
	k, err := s.kidService.GetKid(ctx, kidID, userID)
	if err != nil {
		return err
	}
	plan, err := s.loadWeekPlan(ctx, kidID)
	if err != nil {
		return err
	}

	body, err := renderWeekPlan(k.Name, plan)
	if err != nil {
		return err
	}
	if err := s.mailer.SendMail(email, "Weekly meal plan for "+k.Name, body); err != nil {
		s.log.Error("failed to send meal plan", zap.String("kid_id", kidID), zap.Error(err))
		return err
	}
	return nil
}

func (s *mealPlanService) loadWeekPlan(ctx context.Context, kidID string) (domain.WeekPlan, error) {
	partial, err := s.mealPlanRepository.GetPlan(ctx, kidID)
	if err != nil {
		return domain.WeekPlan{}, err
	}
	return nutrition.Reconcile(partial, nutrition.DefaultWeekPlan()), nil
}

// updateMeal applies fn to one meal. The stored plan only gains the touched
// day, filled from the defaults when it was missing.
func (s *mealPlanService) updateMeal(ctx context.Context, kidID, day, meal string, userID string, fn func(domain.MealSelection) (domain.MealSelection, error)) (domain.MealSelection, error) {
	d, m, err := parseSlot(day, meal)
	if err != nil {
		return domain.MealSelection{}, err
	}
	if err := s.kidService.Authorize(ctx, kidID, userID); err != nil {
		return domain.MealSelection{}, err
	}

	var result domain.MealSelection
	_, err = s.mealPlanRepository.UpdatePlan(ctx, kidID, func(partial domain.PartialWeekPlan) (domain.PartialWeekPlan, error) {
		plan := nutrition.Reconcile(partial, nutrition.DefaultWeekPlan())
		dayMeals := *plan.Day(d)

		next, err := fn(*dayMeals.Meal(m))
		if err != nil {
			return nil, err
		}
		*dayMeals.Meal(m) = next

		out := make(domain.PartialWeekPlan, len(partial)+1)
		for k, v := range partial {
			out[k] = v
		}
		out[d] = dayMeals
		result = next
		return out, nil
	})
	if err != nil {
		return domain.MealSelection{}, err
	}
	return result, nil
}

func parseSlot(day, meal string) (domain.Weekday, domain.MealType, error) {
	d, err := domain.ParseWeekday(day)
	if err != nil {
		return "", "", err
	}
	m, err := domain.ParseMealType(meal)
	if err != nil {
		return "", "", err
	}
	return d, m, nil
}
