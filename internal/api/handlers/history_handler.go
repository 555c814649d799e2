package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/internal/api/presenters"
	"github.com/tkloetzk/mealplanner-sub001/pkg/history"
)

type (
	HistoryHandler interface {
		RecordMeal(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
		GetDailySummary(c *fiber.Ctx) error
	}

	historyHandler struct {
		historyService history.HistoryService
		validator      *validator.Validate
	}
)

func NewHistoryHandler(historyService history.HistoryService, validator *validator.Validate) HistoryHandler {
	return &historyHandler{
		historyService: historyService,
		validator:      validator,
	}
}

func (h *historyHandler) RecordMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecordMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordMeal, err)
	}

	res, err := h.historyService.RecordMeal(c.Context(), c.Params("kidId"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), failedMessage(err, domain.MessageFailedRecordMeal), err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRecordMeal)
}

func (h *historyHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.historyService.GetHistory(c.Context(), c.Params("kidId"), c.Query("from"), c.Query("to"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *historyHandler) GetDailySummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.historyService.GetDailySummary(c.Context(), c.Params("kidId"), c.Params("date"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}
