package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateKid = "kid created successfully"
	MessageSuccessUpdateKid = "kid updated successfully"
	MessageSuccessDeleteKid = "kid deleted successfully"
	MessageSuccessGetKids   = "kids retrieved successfully"
	MessageSuccessGetKid    = "kid retrieved successfully"

	MessageFailedCreateKid = "failed to create kid"
	MessageFailedUpdateKid = "failed to update kid"
	MessageFailedDeleteKid = "failed to delete kid"
	MessageFailedGetKids   = "failed to retrieve kids"

	ErrKidNotFound           = errors.New("kid not found")
	ErrUnauthorizedKidAccess = errors.New("unauthorized access to kid")
)

// Daily goals used when a kid is created without explicit ones.
const (
	DefaultGoalCalories = 1400
	DefaultGoalProtein  = 35
	DefaultGoalCarbs    = 175
	DefaultGoalFat      = 45
)

func DefaultNutritionGoals() NutritionGoals {
	return NutritionGoals{
		Calories: DefaultGoalCalories,
		Protein:  DefaultGoalProtein,
		Carbs:    DefaultGoalCarbs,
		Fat:      DefaultGoalFat,
	}
}

type (
	CreateKidRequest struct {
		Name      string          `json:"name" validate:"required,max=100"`
		BirthDate string          `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
		Goals     *NutritionGoals `json:"goals" validate:"omitempty"`
	}

	UpdateKidRequest struct {
		Name      string          `json:"name" validate:"omitempty,max=100"`
		BirthDate string          `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
		Goals     *NutritionGoals `json:"goals" validate:"omitempty"`
	}

	KidResponse struct {
		ID        string         `json:"id"`
		Name      string         `json:"name"`
		BirthDate string         `json:"birth_date,omitempty"`
		Goals     NutritionGoals `json:"goals"`
		CreatedAt time.Time      `json:"created_at"`
	}
)
