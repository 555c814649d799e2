package nutrition

import (
	"github.com/tkloetzk/mealplanner-sub001/domain"
)

// EmptyMealSelection has no foods and an empty, non-nil condiment list.
func EmptyMealSelection() domain.MealSelection {
	return domain.MealSelection{Condiments: []domain.CondimentSelection{}}
}

// EmptyDayMeals has an EmptyMealSelection for every meal type.
func EmptyDayMeals() domain.DayMeals {
	return domain.DayMeals{
		Breakfast: EmptyMealSelection(),
		Lunch:     EmptyMealSelection(),
		Dinner:    EmptyMealSelection(),
		Snack:     EmptyMealSelection(),
	}
}

// DefaultWeekPlan has all seven days with four empty meals each.
func DefaultWeekPlan() domain.WeekPlan {
	var plan domain.WeekPlan
	for _, d := range domain.Weekdays {
		*plan.Day(d) = EmptyDayMeals()
	}
	return plan
}

// Reconcile fills every weekday missing from partial with the matching day of
// defaults. Days present in partial are taken whole, never merged per meal.
func Reconcile(partial domain.PartialWeekPlan, defaults domain.WeekPlan) domain.WeekPlan {
	var plan domain.WeekPlan
	for _, d := range domain.Weekdays {
		day, ok := partial[d]
		if !ok {
			day = *defaults.Day(d)
		}
		*plan.Day(d) = cloneDay(day)
	}
	return plan
}

// ToPartial turns a complete plan back into its stored shape.
func ToPartial(plan domain.WeekPlan) domain.PartialWeekPlan {
	partial := make(domain.PartialWeekPlan, len(domain.Weekdays))
	for _, d := range domain.Weekdays {
		partial[d] = cloneDay(*plan.Day(d))
	}
	return partial
}

func cloneDay(day domain.DayMeals) domain.DayMeals {
	out := day
	for _, m := range domain.MealTypes {
		meal := out.Meal(m)
		if meal.Condiments != nil {
			condiments := make([]domain.CondimentSelection, len(meal.Condiments))
			copy(condiments, meal.Condiments)
			meal.Condiments = condiments
		}
	}
	return out
}
