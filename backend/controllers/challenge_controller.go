package controllers

import (
	"prephub/backend/services"
	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ChallengeController struct {
	Challenges *services.ChallengeService
}

func NewChallengeController(challenges *services.ChallengeService) *ChallengeController {
	return &ChallengeController{Challenges: challenges}
}

// GetDailyChallenge godoc
// @Summary Get today's challenge
// @Description Schedules today's challenge on first access and returns it with the caller's status
// @Tags daily-challenge
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /daily-challenge [get]
func (cc *ChallengeController) GetDailyChallenge(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	view, err := cc.Challenges.View(c.UserContext(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"challenge": view})
}

// Participate godoc
// @Summary Join today's challenge
// @Tags daily-challenge
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /daily-challenge/participate [post]
func (cc *ChallengeController) Participate(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	view, err := cc.Challenges.Participate(c.UserContext(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if view.UserCompleted {
		return utils.HandleError(c, utils.InvalidStateErr("daily challenge already completed today"))
	}
	return c.JSON(fiber.Map{"message": "Joined daily challenge", "challenge": view})
}

// Complete godoc
// @Summary Complete today's challenge
// @Tags daily-challenge
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /daily-challenge/complete [post]
func (cc *ChallengeController) Complete(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	view, err := cc.Challenges.Complete(c.UserContext(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":     "Daily challenge completed",
		"bonusPoints": view.BonusPoints,
		"challenge":   view,
	})
}
