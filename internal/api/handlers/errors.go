package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tkloetzk/mealplanner-sub001/domain"
)

var (
	badRequestErrors = []error{
		domain.ErrParseUUID,
		domain.ErrInvalidDate,
		domain.ErrInvalidDateRange,
		domain.ErrInvalidCategory,
		domain.ErrInvalidWeekday,
		domain.ErrInvalidMealType,
		domain.ErrInvalidImageFormat,
		domain.ErrNotACondiment,
		domain.ErrInvalidServings,
		domain.ErrInvalidDocument,
	}
	notFoundErrors = []error{
		domain.ErrFoodNotFound,
		domain.ErrKidNotFound,
		domain.ErrUserNotFound,
		domain.ErrProductNotFound,
	}
	conflictErrors = []error{
		domain.ErrEmailAlreadyExists,
		domain.ErrDuplicateFoodBarcode,
	}
)

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	var (
		fiberErr       *fiber.Error
		validationErrs validator.ValidationErrors
	)
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.As(err, &validationErrs), isAny(err, badRequestErrors):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUnauthorizedKidAccess):
		return fiber.StatusForbidden
	case isAny(err, notFoundErrors):
		return fiber.StatusNotFound
	case isAny(err, conflictErrors):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidNumericField), errors.Is(err, domain.ErrInvalidAnalysis):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUpstreamFailed):
		return fiber.StatusBadGateway
	case errors.Is(err, domain.ErrAnalysisUnavailable):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// failedMessage swaps the generic message for one naming the decoding problem.
func failedMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, domain.ErrInvalidNumericField):
		return domain.MessageFailedInvalidNumerics
	case errors.Is(err, domain.ErrInvalidDocument):
		return domain.MessageFailedInvalidDocument
	}
	return fallback
}
