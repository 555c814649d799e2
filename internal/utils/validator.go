package utils

import (
	"github.com/go-playground/validator/v10"

	"github.com/tkloetzk/mealplanner-sub001/domain"
)

// NewValidator returns the validator shared by all handlers. It knows the
// food category, weekday and meal type enumerations.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseWeekday(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("mealtype", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseMealType(fl.Field().String())
		return err == nil
	})
	return v
}
