package controllers

import (
	"time"

	"prephub/backend/config"
	"prephub/backend/services"
	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	Stats        *services.StatsService
	Achievements *services.AchievementService
	Cfg          *config.Config
}

func NewDashboardController(stats *services.StatsService, achievements *services.AchievementService, cfg *config.Config) *DashboardController {
	return &DashboardController{Stats: stats, Achievements: achievements, Cfg: cfg}
}

// GetStats godoc
// @Summary Get dashboard stats
// @Description Returns cumulative and trailing-week statistics derived from the user's attempts
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard/stats [get]
func (dc *DashboardController) GetStats(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	snapshot, err := dc.Stats.Snapshot(c.UserContext(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, snapshot)
}

// GetCalendar godoc
// @Summary Get activity calendar
// @Description Returns one entry per day of the month with goal flags and a month summary
// @Tags dashboard
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Month 1-12, defaults to the current month"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard/calendar [get]
func (dc *DashboardController) GetCalendar(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	now := time.Now().In(dc.Cfg.Location)
	year, err := queryInt(c, "year", now.Year())
	if err != nil {
		return utils.HandleError(c, err)
	}
	month, err := queryInt(c, "month", int(now.Month()))
	if err != nil {
		return utils.HandleError(c, err)
	}

	calendar, err := dc.Stats.Calendar(c.UserContext(), userID, year, month)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, calendar)
}

// GetHistory godoc
// @Summary Get attempt history
// @Tags dashboard
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param filter query string false "all, mocktest or dsa"
// @Param sort query string false "recent, oldest, score or accuracy"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard/history [get]
func (dc *DashboardController) GetHistory(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	page, err := queryInt(c, "page", 1)
	if err != nil {
		return utils.HandleError(c, err)
	}
	pageSize, err := queryInt(c, "pageSize", 0)
	if err != nil {
		return utils.HandleError(c, err)
	}

	history, err := dc.Stats.History(c.UserContext(), userID, services.HistoryParams{
		Page:     page,
		PageSize: pageSize,
		Filter:   c.Query("filter"),
		Sort:     c.Query("sort"),
	})
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, history)
}

// GetAchievements godoc
// @Summary Get achievements
// @Description Awards any newly qualified badges, then lists earned badges and catalog progress
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /dashboard/achievements [get]
func (dc *DashboardController) GetAchievements(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	view, err := dc.Achievements.Overview(c.UserContext(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, view)
}
