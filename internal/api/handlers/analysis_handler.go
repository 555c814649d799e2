package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/internal/api/presenters"
	"github.com/tkloetzk/mealplanner-sub001/pkg/analysis"
)

type (
	AnalysisHandler interface {
		AnalyzeMeal(c *fiber.Ctx) error
	}

	analysisHandler struct {
		analysisService analysis.AnalysisService
	}
)

func NewAnalysisHandler(analysisService analysis.AnalysisService) AnalysisHandler {
	return &analysisHandler{analysisService: analysisService}
}

func (h *analysisHandler) AnalyzeMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.analysisService.AnalyzeMeal(c.Context(), c.Params("kidId"), c.Params("day"), c.Params("meal"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAnalyzeMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAnalyzeMeal)
}
