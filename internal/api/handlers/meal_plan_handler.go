package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/internal/api/presenters"
	"github.com/tkloetzk/mealplanner-sub001/pkg/mealplan"
)

type (
	MealPlanHandler interface {
		GetMealPlan(c *fiber.Ctx) error
		SaveMealPlan(c *fiber.Ctx) error
		ShareMealPlan(c *fiber.Ctx) error

		GetMeal(c *fiber.Ctx) error
		ClearMeal(c *fiber.Ctx) error
		SelectFood(c *fiber.Ctx) error
		ToggleCondiment(c *fiber.Ctx) error
		UpdateCondimentServings(c *fiber.Ctx) error

		GetMealNutrition(c *fiber.Ctx) error
		GetDayNutrition(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) GetMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealPlanService.GetWeekPlan(c.Context(), c.Params("kidId"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlan)
}

func (h *mealPlanHandler) SaveMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.mealPlanService.SaveWeekPlan(c.Context(), c.Params("kidId"), raw, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), failedMessage(err, domain.MessageFailedSaveMealPlan), err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveMealPlan)
}

func (h *mealPlanHandler) ShareMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ShareMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareMealPlan, err)
	}

	if err := h.mealPlanService.ShareWeekPlan(c.Context(), c.Params("kidId"), req.Email, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedShareMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessShareMealPlan)
}

func (h *mealPlanHandler) GetMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealPlanService.GetMealSelection(c.Context(), c.Params("kidId"), c.Params("day"), c.Params("meal"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeal)
}

func (h *mealPlanHandler) ClearMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealPlanService.ClearMeal(c.Context(), c.Params("kidId"), c.Params("day"), c.Params("meal"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearMeal)
}

func (h *mealPlanHandler) SelectFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SelectFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
	}

	res, err := h.mealPlanService.SelectFood(c.Context(), c.Params("kidId"), c.Params("day"), c.Params("meal"), req.FoodID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMeal)
}

func (h *mealPlanHandler) ToggleCondiment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ToggleCondimentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
	}

	res, err := h.mealPlanService.ToggleCondiment(c.Context(), c.Params("kidId"), c.Params("day"), c.Params("meal"), req.FoodID, req.Servings, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMeal)
}

func (h *mealPlanHandler) UpdateCondimentServings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateServingsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
	}

	res, err := h.mealPlanService.UpdateCondimentServings(c.Context(), c.Params("kidId"), c.Params("day"), c.Params("meal"), c.Params("foodId"), req.Servings, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMeal)
}

func (h *mealPlanHandler) GetMealNutrition(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealPlanService.GetMealNutrition(c.Context(), c.Params("kidId"), c.Params("day"), c.Params("meal"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetNutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealNutrition)
}

func (h *mealPlanHandler) GetDayNutrition(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealPlanService.GetDayNutrition(c.Context(), c.Params("kidId"), c.Params("day"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetNutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDayNutrition)
}
