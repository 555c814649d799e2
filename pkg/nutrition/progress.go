package nutrition

import (
	"github.com/tkloetzk/mealplanner-sub001/domain"
)

const (
	overThreshold        = 110
	warningLowThreshold  = 90
	warningHighThreshold = 95
)

// ratio is 0 without a target so that it stays encodable.
func ratio(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return current * 100 / target
}

// exceedsMissingTarget reports intake against a zero target. Any intake
// counts as over it.
func exceedsMissingTarget(current, target float64) bool {
	return target <= 0 && current > 0
}

// ProgressPercentage is current/target in percent, capped at 100. Any intake
// against a missing target is 100, no intake is 0.
func ProgressPercentage(current, target float64) float64 {
	if exceedsMissingTarget(current, target) {
		return 100
	}
	p := ratio(current, target)
	if p > 100 {
		return 100
	}
	return p
}

// ProgressStatusFor classifies intake against a target. Only (90%, 95%] is a
// warning; (95%, 110%] is reported as on-track.
// TODO: confirm with product whether (95%, 110%] should become a warning.
// Intake against a zero target is over, the same as an unbounded ratio.
func ProgressStatusFor(current, target float64) domain.ProgressStatus {
	if exceedsMissingTarget(current, target) {
		return domain.ProgressOver
	}
	p := ratio(current, target)
	switch {
	case p > overThreshold:
		return domain.ProgressOver
	case p > warningLowThreshold && p <= warningHighThreshold:
		return domain.ProgressWarning
	}
	return domain.ProgressOnTrack
}

func NewNutrientProgress(current, target float64) domain.NutrientProgress {
	status := ProgressStatusFor(current, target)
	return domain.NutrientProgress{
		Current:    current,
		Target:     target,
		Ratio:      ratio(current, target),
		Percentage: ProgressPercentage(current, target),
		Status:     status,
		Color:      status.Color(),
	}
}

func NewDailyProgress(totals domain.NutritionTotals, goals domain.NutritionGoals) domain.DailyProgress {
	return domain.DailyProgress{
		Calories: NewNutrientProgress(totals.Calories, goals.Calories),
		Protein:  NewNutrientProgress(totals.Protein, goals.Protein),
		Carbs:    NewNutrientProgress(totals.Carbs, goals.Carbs),
		Fat:      NewNutrientProgress(totals.Fat, goals.Fat),
	}
}
