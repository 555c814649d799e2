package mealplan

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/pkg/nutrition"
)

type (
	shareView struct {
		KidName string
		Days    []shareDay
		Week    domain.NutritionTotals
	}

	shareDay struct {
		Name   string
		Meals  []shareMeal
		Totals domain.NutritionTotals
	}

	shareMeal struct {
		Name   string
		Foods  []string
		Totals domain.NutritionTotals
	}
)

var shareTemplate = template.Must(template.New("plan").Funcs(template.FuncMap{
	"round": func(f float64) string { return fmt.Sprintf("%.0f", f) },
}).Parse(`<h2>Weekly meal plan for {{.KidName}}</h2>
{{range .Days}}<h3>{{.Name}}</h3>
<table>
{{range .Meals}}<tr><td><b>{{.Name}}</b></td><td>{{if .Foods}}{{range $i, $f := .Foods}}{{if $i}}, {{end}}{{$f}}{{end}}{{else}}-{{end}}</td><td>{{round .Totals.Calories}} kcal</td></tr>
{{end}}</table>
<p>Day total: {{round .Totals.Calories}} kcal, {{round .Totals.Protein}} g protein, {{round .Totals.Carbs}} g carbs, {{round .Totals.Fat}} g fat</p>
{{end}}<p>Week total: {{round .Week.Calories}} kcal</p>
`))

func renderWeekPlan(kidName string, plan domain.WeekPlan) (string, error) {
	view := shareView{KidName: kidName, Week: nutrition.WeekTotals(plan)}
	for _, d := range domain.Weekdays {
		day := plan.Day(d)
		sd := shareDay{Name: title(string(d)), Totals: nutrition.DayTotals(*day)}
		for _, m := range domain.MealTypes {
			sel := day.Meal(m)
			sd.Meals = append(sd.Meals, shareMeal{
				Name:   title(string(m)),
				Foods:  foodNames(*sel),
				Totals: nutrition.Totals(*sel),
			})
		}
		view.Days = append(view.Days, sd)
	}

	var buf bytes.Buffer
	if err := shareTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render meal plan: %w", err)
	}
	return buf.String(), nil
}

func foodNames(sel domain.MealSelection) []string {
	var names []string
	for _, c := range domain.SingularCategories {
		if f := *sel.Slot(c); f != nil {
			names = append(names, f.Name)
		}
	}
	for _, c := range sel.Condiments {
		if c.Servings == 1 {
			names = append(names, c.Name)
			continue
		}
		names = append(names, fmt.Sprintf("%s x%g", c.Name, c.Servings))
	}
	return names
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
