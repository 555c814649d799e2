package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/internal/api/presenters"
	"github.com/tkloetzk/mealplanner-sub001/pkg/food"
)

type (
	FoodHandler interface {
		AddFood(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		GetFoods(c *fiber.Ctx) error
		GetFood(c *fiber.Ctx) error
		LookupBarcode(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	req, err := h.parseFoodRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), failedMessage(err, domain.MessageFailedAddFood), err)
	}

	res, err := h.foodService.AddFood(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), failedMessage(err, domain.MessageFailedAddFood), err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFood)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	foodID := c.Params("id")

	req, err := h.parseFoodRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), failedMessage(err, domain.MessageFailedUpdateFood), err)
	}

	res, err := h.foodService.UpdateFood(c.Context(), foodID, req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), failedMessage(err, domain.MessageFailedUpdateFood), err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFood)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	foodID := c.Params("id")

	if err := h.foodService.DeleteFood(c.Context(), foodID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteFood, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	category := c.Query("category")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "100"))
	if err != nil || limit < 1 {
		limit = 100
	}

	res, err := h.foodService.GetFoods(c.Context(), category, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFood(c *fiber.Ctx) error {
	foodID := c.Params("id")

	res, err := h.foodService.GetFood(c.Context(), foodID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFood)
}

func (h *foodHandler) LookupBarcode(c *fiber.Ctx) error {
	upc := c.Params("upc")
	if err := h.validator.Var(upc, "required,numeric,min=8,max=14"); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLookupBarcode, err)
	}

	res, err := h.foodService.LookupBarcode(c.Context(), upc)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedLookupBarcode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLookupBarcode)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.UploadFoodImageRequest{FoodID: c.Params("id"), Image: file}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	res, err := h.foodService.UploadFoodImage(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

// parseFoodRequest reads the body loosely so that numeric strings are
// accepted, then validates the typed request.
func (h *foodHandler) parseFoodRequest(c *fiber.Ctx) (domain.FoodRequest, error) {
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return domain.FoodRequest{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req, err := food.DecodeFoodRequest(raw)
	if err != nil {
		return domain.FoodRequest{}, err
	}

	if err := h.validator.Struct(req); err != nil {
		return domain.FoodRequest{}, err
	}
	return req, nil
}
