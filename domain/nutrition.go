package domain

type ProgressStatus string

const (
	ProgressOnTrack ProgressStatus = "on-track"
	ProgressWarning ProgressStatus = "warning"
	ProgressOver    ProgressStatus = "over"
)

func (s ProgressStatus) Color() string {
	switch s {
	case ProgressOver:
		return "red"
	case ProgressWarning:
		return "yellow"
	}
	return "green"
}

type (
	NutritionGoals struct {
		Calories float64 `json:"calories" validate:"gte=0"`
		Protein  float64 `json:"protein" validate:"gte=0"`
		Carbs    float64 `json:"carbs" validate:"gte=0"`
		Fat      float64 `json:"fat" validate:"gte=0"`
	}

	NutrientProgress struct {
		Current float64 `json:"current"`
		Target  float64 `json:"target"`
		// Ratio is current/target in percent, Percentage the same value
		// capped at 100 for progress bars.
		Ratio      float64        `json:"ratio"`
		Percentage float64        `json:"percentage"`
		Status     ProgressStatus `json:"status"`
		Color      string         `json:"color"`
	}

	DailyProgress struct {
		Calories NutrientProgress `json:"calories"`
		Protein  NutrientProgress `json:"protein"`
		Carbs    NutrientProgress `json:"carbs"`
		Fat      NutrientProgress `json:"fat"`
	}
)

func (g NutritionGoals) Totals() NutritionTotals {
	return NutritionTotals{Calories: g.Calories, Protein: g.Protein, Carbs: g.Carbs, Fat: g.Fat}
}
