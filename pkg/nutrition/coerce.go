package nutrition

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tkloetzk/mealplanner-sub001/domain"
)

// NumericFields are the keys coerced to numbers wherever they appear.
var NumericFields = []string{
	"calories",
	"protein",
	"carbs",
	"fat",
	"adjustedCalories",
	"adjustedProtein",
	"adjustedCarbs",
	"adjustedFat",
}

// looseNumberFields are numeric keys outside NumericFields that clients also
// send as strings. They are converted before decoding but never validated
// as nutrition values.
var looseNumberFields = []string{"servings", "servingSize"}

// IsNumericField reports whether key is one of NumericFields.
func IsNumericField(key string) bool {
	for _, f := range NumericFields {
		if f == key {
			return true
		}
	}
	return false
}

// ToNumber converts v the way a JSON client would expect a loose number
// conversion to behave: numeric strings are parsed after trimming, the empty
// string and null are 0, booleans are 1 or 0. An empty array is 0 and a
// one-element array converts its element. Anything else is NaN.
func ToNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case json.Number:
		return parseNumber(string(n))
	case string:
		return parseNumber(n)
	case []any:
		switch len(n) {
		case 0:
			return 0
		case 1:
			return arrayElementNumber(n[0])
		}
	}
	return math.NaN()
}

// arrayElementNumber converts the single element of an array, which goes
// through its string form first: [null] is 0 and [true] is NaN.
func arrayElementNumber(v any) float64 {
	switch v.(type) {
	case bool, map[string]any:
		return math.NaN()
	}
	return ToNumber(v)
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if strings.Contains(s, "_") {
				return math.NaN()
			}
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	// strconv accepts inf, nan, hex floats and digit separators; plain
	// decimal notation is all that is allowed here.
	for _, r := range s {
		if !strings.ContainsRune("0123456789.eE+-", r) {
			return math.NaN()
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

// CoerceNumericFields walks maps and slices and converts every numeric field
// to a float64. Null values are kept, unconvertible values become NaN. The
// input is not modified.
func CoerceNumericFields(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if IsNumericField(k) && val != nil {
				out[k] = ToNumber(val)
				continue
			}
			out[k] = CoerceNumericFields(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = CoerceNumericFields(val)
		}
		return out
	}
	return v
}

// CoerceFlatNumericFields converts the numeric fields present at the top
// level of m, falling back to 0 when a value cannot be converted. Nested
// values are left alone.
func CoerceFlatNumericFields(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	for _, f := range NumericFields {
		v, ok := m[f]
		if !ok {
			continue
		}
		n := ToNumber(v)
		if math.IsNaN(n) {
			n = 0
		}
		out[f] = n
	}
	return out
}

// HasValidNumericFields reports whether every numeric field of m is either
// missing, null, or converts to a finite number.
func HasValidNumericFields(m map[string]any) bool {
	for _, f := range NumericFields {
		v, ok := m[f]
		if !ok || v == nil {
			continue
		}
		if !isFinite(ToNumber(v)) {
			return false
		}
	}
	return true
}

// HasValidNumericFieldsDeep applies HasValidNumericFields to every object
// nested in v.
func HasValidNumericFieldsDeep(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		if !HasValidNumericFields(t) {
			return false
		}
		for k, val := range t {
			if IsNumericField(k) {
				continue
			}
			if !HasValidNumericFieldsDeep(val) {
				return false
			}
		}
	case []any:
		for _, val := range t {
			if !HasValidNumericFieldsDeep(val) {
				return false
			}
		}
	}
	return true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Decode coerces raw, rejects it when a numeric field is not a finite number
// and decodes the result into out. Values that do not fit the shape of out
// fail with ErrInvalidDocument.
func Decode(raw any, out any) error {
	coerced := CoerceNumericFields(raw)
	if !HasValidNumericFieldsDeep(coerced) {
		return domain.ErrInvalidNumericField
	}
	coerced, ok := coerceLooseNumbers(coerced)
	if !ok {
		return domain.ErrInvalidNumericField
	}

	b, err := json.Marshal(coerced)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	return nil
}

// coerceLooseNumbers converts the looseNumberFields found anywhere in v. It
// reports false when one of them is not a finite number.
func coerceLooseNumbers(v any) (any, bool) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if isLooseNumberField(k) && val != nil {
				n := ToNumber(val)
				if !isFinite(n) {
					return nil, false
				}
				out[k] = n
				continue
			}
			next, ok := coerceLooseNumbers(val)
			if !ok {
				return nil, false
			}
			out[k] = next
		}
		return out, true
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			next, ok := coerceLooseNumbers(val)
			if !ok {
				return nil, false
			}
			out[i] = next
		}
		return out, true
	}
	return v, true
}

func isLooseNumberField(key string) bool {
	for _, f := range looseNumberFields {
		if f == key {
			return true
		}
	}
	return false
}

func DecodeMealSelection(raw any) (domain.MealSelection, error) {
	var sel domain.MealSelection
	if err := Decode(raw, &sel); err != nil {
		return domain.MealSelection{}, err
	}
	return NormalizeSelection(sel), nil
}

// DecodePartialWeekPlan keeps the known weekday keys of raw and decodes them.
func DecodePartialWeekPlan(raw any) (domain.PartialWeekPlan, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		if raw == nil {
			return domain.PartialWeekPlan{}, nil
		}
		return nil, fmt.Errorf("%w: week plan must be an object, got %T", domain.ErrInvalidDocument, raw)
	}

	known := make(map[string]any, len(obj))
	for k, v := range obj {
		if _, err := domain.ParseWeekday(k); err == nil {
			known[k] = v
		}
	}

	plan := domain.PartialWeekPlan{}
	if err := Decode(known, &plan); err != nil {
		return nil, err
	}
	for day, meals := range plan {
		plan[day] = normalizeDay(meals)
	}
	return plan, nil
}
