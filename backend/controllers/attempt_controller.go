package controllers

import (
	"prephub/backend/models"
	"prephub/backend/services"
	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AttemptController struct {
	Attempts *services.AttemptService
}

func NewAttemptController(attempts *services.AttemptService) *AttemptController {
	return &AttemptController{Attempts: attempts}
}

// RecordAttempt godoc
// @Summary Record an attempt
// @Description Appends a finished mock test or DSA problem and returns any badges it unlocked
// @Tags attempts
// @Accept json
// @Produce json
// @Param attempt body models.Attempt true "Attempt"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /attempts [post]
func (ac *AttemptController) RecordAttempt(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var attempt models.Attempt
	if err := c.BodyParser(&attempt); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	result, err := ac.Attempts.Record(c.UserContext(), userID, attempt)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, result)
}
