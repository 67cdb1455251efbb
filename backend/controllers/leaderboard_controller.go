package controllers

import (
	"strings"

	"prephub/backend/analytics"
	"prephub/backend/services"
	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type LeaderboardController struct {
	Leaderboard *services.LeaderboardService
}

func NewLeaderboardController(leaderboard *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{Leaderboard: leaderboard}
}

// GetLeaderboard godoc
// @Summary Get leaderboard
// @Description Ranks users by total score within the filtered scope
// @Tags leaderboard
// @Produce json
// @Param exam query string false "Exam"
// @Param subject query string false "Subject"
// @Param chapter query string false "Chapter"
// @Param timeframe query string false "today, week, month or all"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} models.LeaderboardPage
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	timeframe, err := analytics.ParseTimeframe(c.Query("timeframe"))
	if err != nil {
		return utils.HandleError(c, utils.ValidationErr("%v", err))
	}
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return utils.HandleError(c, err)
	}
	pageSize, err := queryInt(c, "pageSize", analytics.DefaultPageSize)
	if err != nil {
		return utils.HandleError(c, err)
	}

	scope := analytics.Scope{
		Exam:      strings.TrimSpace(c.Query("exam")),
		Subject:   strings.TrimSpace(c.Query("subject")),
		Chapter:   strings.TrimSpace(c.Query("chapter")),
		Timeframe: timeframe,
	}
	result, err := lc.Leaderboard.Leaderboard(c.UserContext(), scope, page, pageSize)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(result)
}

// GetFilters godoc
// @Summary Get leaderboard filters
// @Tags leaderboard
// @Produce json
// @Success 200 {object} models.LeaderboardFilters
// @Security ApiKeyAuth
// @Router /leaderboard/filters [get]
func (lc *LeaderboardController) GetFilters(c *fiber.Ctx) error {
	filters, err := lc.Leaderboard.Filters(c.UserContext())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(filters)
}

// GetTopPerformers godoc
// @Summary Get top performers
// @Description Returns the all-time top of the unfiltered leaderboard
// @Tags leaderboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /leaderboard/top-performers [get]
func (lc *LeaderboardController) GetTopPerformers(c *fiber.Ctx) error {
	top, err := lc.Leaderboard.TopPerformers(c.UserContext())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"topPerformers": top})
}
