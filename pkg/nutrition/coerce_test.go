package nutrition

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkloetzk/mealplanner-sub001/domain"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 70.5, 70.5},
		{"int", 12, 12},
		{"numeric string", "65", 65},
		{"padded string", "  0.5\n", 0.5},
		{"exponent", "1e3", 1000},
		{"signed", "-2.5", -2.5},
		{"empty string", "", 0},
		{"blank string", "   ", 0},
		{"null", nil, 0},
		{"true", true, 1},
		{"false", false, 0},
		{"json number", json.Number("6.5"), 6.5},
		{"hex", "0x10", 16},
		{"binary", "0b101", 5},
		{"infinity", "Infinity", math.Inf(1)},
		{"negative infinity", "-Infinity", math.Inf(-1)},
		{"empty array", []any{}, 0},
		{"single element array", []any{1}, 1},
		{"single string array", []any{"12"}, 12},
		{"single null array", []any{nil}, 0},
		{"nested single array", []any{[]any{"3"}}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToNumber(tt.in))
		})
	}
}

func TestToNumberNaN(t *testing.T) {
	for _, in := range []any{"abc", "12abc", "1_000", "inf", "NaN", "0x1p-2", "1e", map[string]any{}, []any{1, 2}, []any{true}, []any{"x"}} {
		assert.True(t, math.IsNaN(ToNumber(in)), "expected NaN for %#v", in)
	}
}

func TestCoerceNumericFields(t *testing.T) {
	in := map[string]any{
		"name":        "Egg",
		"calories":    "70",
		"protein":     6,
		"carbs":       nil,
		"servingSize": "1",
		"nested": map[string]any{
			"fat": "5",
		},
		"condiments": []any{
			map[string]any{"adjustedFat": "6.5", "name": "Ranch"},
			"plain",
			3,
		},
	}

	out := CoerceNumericFields(in).(map[string]any)

	assert.Equal(t, "Egg", out["name"])
	assert.Equal(t, 70.0, out["calories"])
	assert.Equal(t, 6.0, out["protein"])
	assert.Nil(t, out["carbs"])
	assert.Equal(t, "1", out["servingSize"])
	assert.Equal(t, 5.0, out["nested"].(map[string]any)["fat"])

	condiments := out["condiments"].([]any)
	require.Len(t, condiments, 3)
	assert.Equal(t, 6.5, condiments[0].(map[string]any)["adjustedFat"])
	assert.Equal(t, "Ranch", condiments[0].(map[string]any)["name"])
	assert.Equal(t, "plain", condiments[1])
	assert.Equal(t, 3, condiments[2])

	// input is untouched
	assert.Equal(t, "70", in["calories"])
	assert.Equal(t, "5", in["nested"].(map[string]any)["fat"])
}

func TestCoerceNumericFieldsPerValue(t *testing.T) {
	for _, v := range []any{"42", 42, 42.0, "4.2e1", json.Number("42")} {
		out := CoerceNumericFields(map[string]any{"calories": v}).(map[string]any)
		assert.Equal(t, ToNumber(v), out["calories"])
	}

	out := CoerceNumericFields(map[string]any{"calories": nil}).(map[string]any)
	v, ok := out["calories"]
	assert.True(t, ok)
	assert.Nil(t, v)

	out = CoerceNumericFields(map[string]any{"calories": "lots"}).(map[string]any)
	assert.True(t, math.IsNaN(out["calories"].(float64)))
}

func TestCoerceNumericFieldsDeepNesting(t *testing.T) {
	var v any = map[string]any{"fat": "1"}
	for i := 0; i < 200; i++ {
		v = map[string]any{"child": []any{v}}
	}

	out := CoerceNumericFields(v)
	for i := 0; i < 200; i++ {
		out = out.(map[string]any)["child"].([]any)[0]
	}
	assert.Equal(t, 1.0, out.(map[string]any)["fat"])
}

func TestCoerceNumericFieldsLeaves(t *testing.T) {
	assert.Equal(t, "x", CoerceNumericFields("x"))
	assert.Nil(t, CoerceNumericFields(nil))
	assert.Equal(t, []any{}, CoerceNumericFields([]any{}))
}

func TestCoerceFlatNumericFields(t *testing.T) {
	in := map[string]any{
		"calories": "abc",
		"protein":  "4",
		"fat":      nil,
		"name":     "Toast",
		"nested":   map[string]any{"carbs": "2"},
	}

	out := CoerceFlatNumericFields(in)

	assert.Equal(t, 0.0, out["calories"])
	assert.Equal(t, 4.0, out["protein"])
	assert.Equal(t, 0.0, out["fat"])
	assert.Equal(t, "Toast", out["name"])
	assert.Equal(t, "2", out["nested"].(map[string]any)["carbs"])
	_, hasCarbs := out["carbs"]
	assert.False(t, hasCarbs)
	assert.Equal(t, "abc", in["calories"])
}

func TestHasValidNumericFields(t *testing.T) {
	assert.True(t, HasValidNumericFields(map[string]any{}))
	assert.True(t, HasValidNumericFields(map[string]any{"calories": "70", "fat": nil, "name": "x"}))
	assert.True(t, HasValidNumericFields(map[string]any{"protein": 0}))
	assert.False(t, HasValidNumericFields(map[string]any{"calories": "seventy"}))
	assert.False(t, HasValidNumericFields(map[string]any{"carbs": "Infinity"}))
	assert.False(t, HasValidNumericFields(map[string]any{"adjustedFat": math.NaN()}))

	in := map[string]any{"calories": "70"}
	HasValidNumericFields(in)
	assert.Equal(t, "70", in["calories"])
}

func TestHasValidNumericFieldsDeep(t *testing.T) {
	ok := map[string]any{"proteins": map[string]any{"calories": 70.0}, "condiments": []any{map[string]any{"fat": 1.0}}}
	bad := map[string]any{"proteins": nil, "condiments": []any{map[string]any{"fat": math.NaN()}}}

	assert.True(t, HasValidNumericFieldsDeep(ok))
	assert.False(t, HasValidNumericFieldsDeep(bad))
}

func TestDecodeMealSelection(t *testing.T) {
	raw := map[string]any{
		"proteins": map[string]any{"id": "egg", "name": "Egg", "calories": "70", "protein": "6", "carbs": 0, "fat": "5", "category": "proteins"},
		"fruits":   nil,
		"condiments": []any{
			map[string]any{
				"id":               "ranch",
				"name":             "Ranch",
				"category":         "condiments",
				"calories":         "65",
				"protein":          0,
				"carbs":            "0.5",
				"fat":              "6.5",
				"servings":         2,
				"adjustedCalories": 9999,
			},
		},
	}

	sel, err := DecodeMealSelection(raw)
	require.NoError(t, err)

	require.NotNil(t, sel.Proteins)
	assert.Equal(t, 70.0, sel.Proteins.Calories)
	assert.Nil(t, sel.Fruits)
	require.Len(t, sel.Condiments, 1)
	assert.Equal(t, 130.0, sel.Condiments[0].AdjustedCalories)
	assert.Equal(t, 13.0, sel.Condiments[0].AdjustedFat)
}

func TestDecodeMealSelectionRejectsNaN(t *testing.T) {
	raw := map[string]any{
		"grains": map[string]any{"id": "toast", "calories": "a lot"},
	}

	_, err := DecodeMealSelection(raw)
	assert.ErrorIs(t, err, domain.ErrInvalidNumericField)
}

func TestDecodePartialWeekPlan(t *testing.T) {
	raw := map[string]any{
		"monday": map[string]any{
			"breakfast": map[string]any{
				"milk": map[string]any{"id": "milk", "calories": "120", "category": "milk"},
			},
		},
		"funday": map[string]any{},
	}

	plan, err := DecodePartialWeekPlan(raw)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	require.NotNil(t, plan[domain.Monday].Breakfast.Milk)
	assert.Equal(t, 120.0, plan[domain.Monday].Breakfast.Milk.Calories)
	assert.NotNil(t, plan[domain.Monday].Lunch.Condiments)

	empty, err := DecodePartialWeekPlan(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = DecodePartialWeekPlan([]any{})
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)
}

func TestDecodePartialWeekPlanStringServings(t *testing.T) {
	raw := map[string]any{
		"monday": map[string]any{
			"breakfast": map[string]any{
				"condiments": []any{
					map[string]any{"id": "r", "calories": 65, "servings": "2"},
				},
			},
		},
	}

	plan, err := DecodePartialWeekPlan(raw)
	require.NoError(t, err)
	require.Len(t, plan[domain.Monday].Breakfast.Condiments, 1)
	assert.Equal(t, 2.0, plan[domain.Monday].Breakfast.Condiments[0].Servings)
	assert.Equal(t, 130.0, plan[domain.Monday].Breakfast.Condiments[0].AdjustedCalories)

	raw["monday"].(map[string]any)["breakfast"].(map[string]any)["condiments"] = []any{
		map[string]any{"id": "r", "calories": 65, "servings": "two"},
	}
	_, err = DecodePartialWeekPlan(raw)
	assert.ErrorIs(t, err, domain.ErrInvalidNumericField)
}

func TestDecodeRejectsMismatchedShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"string slot", map[string]any{"monday": map[string]any{"breakfast": map[string]any{"proteins": "egg"}}}},
		{"string meal", map[string]any{"monday": map[string]any{"lunch": "soup"}}},
		{"object condiments", map[string]any{"monday": map[string]any{"dinner": map[string]any{"condiments": map[string]any{}}}}},
		{"numeric id", map[string]any{"monday": map[string]any{"snack": map[string]any{"fruits": map[string]any{"id": 7}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePartialWeekPlan(tt.raw)
			assert.ErrorIs(t, err, domain.ErrInvalidDocument)
			assert.NotErrorIs(t, err, domain.ErrInvalidNumericField)
		})
	}

	_, err := DecodeMealSelection(map[string]any{"proteins": "egg"})
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)
}
