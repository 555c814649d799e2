package domain

import (
	"errors"
)

type Category string

const (
	CategoryProteins   Category = "proteins"
	CategoryFruits     Category = "fruits"
	CategoryVegetables Category = "vegetables"
	CategoryGrains     Category = "grains"
	CategoryMilk       Category = "milk"
	CategoryCondiments Category = "condiments"
)

// SingularCategories hold at most one food per meal.
var SingularCategories = []Category{
	CategoryProteins,
	CategoryFruits,
	CategoryVegetables,
	CategoryGrains,
	CategoryMilk,
}

var Categories = append(append([]Category{}, SingularCategories...), CategoryCondiments)

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func ParseMealType(s string) (MealType, error) {
	for _, m := range MealTypes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", ErrInvalidMealType
}

type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func ParseWeekday(s string) (Weekday, error) {
	for _, d := range Weekdays {
		if string(d) == s {
			return d, nil
		}
	}
	return "", ErrInvalidWeekday
}

var (
	ErrInvalidMealType = errors.New("invalid meal type")
	ErrInvalidWeekday  = errors.New("invalid weekday")
)

type (
	// Food is a catalog entry. Nutrition values are per serving.
	Food struct {
		ID              string   `json:"id"`
		Name            string   `json:"name"`
		Calories        float64  `json:"calories"`
		Protein         float64  `json:"protein"`
		Carbs           float64  `json:"carbs"`
		Fat             float64  `json:"fat"`
		Category        Category `json:"category"`
		ServingSize     float64  `json:"servingSize"`
		ServingSizeUnit string   `json:"servingSizeUnit"`
		Upc             string   `json:"upc,omitempty"`
		ImageURL        string   `json:"imageUrl,omitempty"`
	}

	// CondimentSelection carries the condiment food plus its servings. The
	// adjusted values always equal Servings times the matching Food value.
	CondimentSelection struct {
		Food
		Servings         float64 `json:"servings"`
		AdjustedCalories float64 `json:"adjustedCalories"`
		AdjustedProtein  float64 `json:"adjustedProtein"`
		AdjustedCarbs    float64 `json:"adjustedCarbs"`
		AdjustedFat      float64 `json:"adjustedFat"`
	}

	MealSelection struct {
		Proteins   *Food                `json:"proteins"`
		Fruits     *Food                `json:"fruits"`
		Vegetables *Food                `json:"vegetables"`
		Grains     *Food                `json:"grains"`
		Milk       *Food                `json:"milk"`
		Condiments []CondimentSelection `json:"condiments"`
	}

	DayMeals struct {
		Breakfast MealSelection `json:"breakfast"`
		Lunch     MealSelection `json:"lunch"`
		Dinner    MealSelection `json:"dinner"`
		Snack     MealSelection `json:"snack"`
	}

	WeekPlan struct {
		Sunday    DayMeals `json:"sunday"`
		Monday    DayMeals `json:"monday"`
		Tuesday   DayMeals `json:"tuesday"`
		Wednesday DayMeals `json:"wednesday"`
		Thursday  DayMeals `json:"thursday"`
		Friday    DayMeals `json:"friday"`
		Saturday  DayMeals `json:"saturday"`
	}

	// PartialWeekPlan is the stored shape of a plan. Days may be missing; it
	// only becomes a WeekPlan through reconciliation.
	PartialWeekPlan map[Weekday]DayMeals

	NutritionTotals struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}
)

// Slot returns the singular-category slot for c, or nil for condiments and
// unknown categories.
func (m *MealSelection) Slot(c Category) **Food {
	switch c {
	case CategoryProteins:
		return &m.Proteins
	case CategoryFruits:
		return &m.Fruits
	case CategoryVegetables:
		return &m.Vegetables
	case CategoryGrains:
		return &m.Grains
	case CategoryMilk:
		return &m.Milk
	}
	return nil
}

func (d *DayMeals) Meal(t MealType) *MealSelection {
	switch t {
	case MealBreakfast:
		return &d.Breakfast
	case MealLunch:
		return &d.Lunch
	case MealDinner:
		return &d.Dinner
	case MealSnack:
		return &d.Snack
	}
	return nil
}

func (w *WeekPlan) Day(d Weekday) *DayMeals {
	switch d {
	case Sunday:
		return &w.Sunday
	case Monday:
		return &w.Monday
	case Tuesday:
		return &w.Tuesday
	case Wednesday:
		return &w.Wednesday
	case Thursday:
		return &w.Thursday
	case Friday:
		return &w.Friday
	case Saturday:
		return &w.Saturday
	}
	return nil
}

func (t NutritionTotals) Add(o NutritionTotals) NutritionTotals {
	return NutritionTotals{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Carbs:    t.Carbs + o.Carbs,
		Fat:      t.Fat + o.Fat,
	}
}
