package food

import (
	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/pkg/nutrition"
)

// DecodeFoodRequest turns a loosely typed body into a FoodRequest. Numeric
// fields that cannot be converted are rejected, null ones become 0.
func DecodeFoodRequest(raw map[string]any) (domain.FoodRequest, error) {
	if !nutrition.HasValidNumericFields(raw) {
		return domain.FoodRequest{}, domain.ErrInvalidNumericField
	}

	var req domain.FoodRequest
	if err := nutrition.Decode(nutrition.CoerceFlatNumericFields(raw), &req); err != nil {
		return domain.FoodRequest{}, err
	}
	return req, nil
}
