package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/internal/api/presenters"
	"github.com/tkloetzk/mealplanner-sub001/pkg/kid"
)

type (
	KidHandler interface {
		CreateKid(c *fiber.Ctx) error
		GetKids(c *fiber.Ctx) error
		GetKid(c *fiber.Ctx) error
		UpdateKid(c *fiber.Ctx) error
		DeleteKid(c *fiber.Ctx) error
	}

	kidHandler struct {
		kidService kid.KidService
		validator  *validator.Validate
	}
)

func NewKidHandler(kidService kid.KidService, validator *validator.Validate) KidHandler {
	return &kidHandler{
		kidService: kidService,
		validator:  validator,
	}
}

func (h *kidHandler) CreateKid(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateKidRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateKid, err)
	}

	res, err := h.kidService.CreateKid(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateKid, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateKid)
}

func (h *kidHandler) GetKids(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.kidService.GetKids(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetKids, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetKids)
}

func (h *kidHandler) GetKid(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.kidService.GetKid(c.Context(), c.Params("kidId"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetKids, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetKid)
}

func (h *kidHandler) UpdateKid(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateKidRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateKid, err)
	}

	res, err := h.kidService.UpdateKid(c.Context(), c.Params("kidId"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateKid, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateKid)
}

func (h *kidHandler) DeleteKid(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.kidService.DeleteKid(c.Context(), c.Params("kidId"), userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteKid, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteKid)
}
