package nutrition

import (
	"math"

	"github.com/tkloetzk/mealplanner-sub001/domain"
)

const DefaultServings = 1

func normalizeServings(servings float64) float64 {
	if !(servings > 0) || math.IsInf(servings, 0) {
		return DefaultServings
	}
	return servings
}

// NewCondimentSelection scales the base food values by servings.
func NewCondimentSelection(food domain.Food, servings float64) domain.CondimentSelection {
	servings = normalizeServings(servings)
	return domain.CondimentSelection{
		Food:             food,
		Servings:         servings,
		AdjustedCalories: food.Calories * servings,
		AdjustedProtein:  food.Protein * servings,
		AdjustedCarbs:    food.Carbs * servings,
		AdjustedFat:      food.Fat * servings,
	}
}

// Totals sums the singular-category foods and the adjusted condiment values.
func Totals(sel domain.MealSelection) domain.NutritionTotals {
	var t domain.NutritionTotals
	for _, c := range domain.SingularCategories {
		f := *sel.Slot(c)
		if f == nil {
			continue
		}
		t.Calories += f.Calories
		t.Protein += f.Protein
		t.Carbs += f.Carbs
		t.Fat += f.Fat
	}
	for _, c := range sel.Condiments {
		t.Calories += c.AdjustedCalories
		t.Protein += c.AdjustedProtein
		t.Carbs += c.AdjustedCarbs
		t.Fat += c.AdjustedFat
	}
	return t
}

// DayTotals sums the four meals of day.
func DayTotals(day domain.DayMeals) domain.NutritionTotals {
	var t domain.NutritionTotals
	for _, m := range domain.MealTypes {
		t = t.Add(Totals(*day.Meal(m)))
	}
	return t
}

// WeekTotals sums every day of plan.
func WeekTotals(plan domain.WeekPlan) domain.NutritionTotals {
	var t domain.NutritionTotals
	for _, d := range domain.Weekdays {
		t = t.Add(DayTotals(*plan.Day(d)))
	}
	return t
}

// ToggleCondiment removes the condiment when one with the same food id is
// already selected, otherwise adds it with the given servings.
func ToggleCondiment(sel domain.MealSelection, food domain.Food, servings float64) domain.MealSelection {
	out := sel
	out.Condiments = make([]domain.CondimentSelection, 0, len(sel.Condiments)+1)

	removed := false
	for _, c := range sel.Condiments {
		if c.ID == food.ID {
			removed = true
			continue
		}
		out.Condiments = append(out.Condiments, c)
	}
	if !removed {
		out.Condiments = append(out.Condiments, NewCondimentSelection(food, servings))
	}
	return out
}

// UpdateCondimentServings recomputes the adjusted values of the matching
// condiment from its base food values. An unknown id leaves sel unchanged.
func UpdateCondimentServings(sel domain.MealSelection, foodID string, servings float64) domain.MealSelection {
	idx := -1
	for i, c := range sel.Condiments {
		if c.ID == foodID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return sel
	}

	out := sel
	out.Condiments = make([]domain.CondimentSelection, len(sel.Condiments))
	copy(out.Condiments, sel.Condiments)
	out.Condiments[idx] = NewCondimentSelection(sel.Condiments[idx].Food, servings)
	return out
}

// SelectFood puts food into its category slot, or clears the slot when that
// food is already there. Condiments are toggled with a single serving.
func SelectFood(sel domain.MealSelection, food domain.Food) domain.MealSelection {
	if food.Category == domain.CategoryCondiments {
		return ToggleCondiment(sel, food, DefaultServings)
	}

	out := sel
	slot := out.Slot(food.Category)
	if slot == nil {
		return sel
	}
	if *slot != nil && (*slot).ID == food.ID {
		*slot = nil
		return out
	}
	f := food
	*slot = &f
	return out
}

// NormalizeSelection restores the condiment invariant on selections that
// came from outside: servings default to 1 and adjusted values are derived
// from the base food values.
func NormalizeSelection(sel domain.MealSelection) domain.MealSelection {
	out := sel
	out.Condiments = make([]domain.CondimentSelection, 0, len(sel.Condiments))
	for _, c := range sel.Condiments {
		out.Condiments = append(out.Condiments, NewCondimentSelection(c.Food, c.Servings))
	}
	return out
}

func normalizeDay(day domain.DayMeals) domain.DayMeals {
	for _, m := range domain.MealTypes {
		meal := day.Meal(m)
		*meal = NormalizeSelection(*meal)
	}
	return day
}
