package controllers

import (
	"time"

	"prephub/backend/config"
	"prephub/backend/models"
	"prephub/backend/services"
	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const progressMonths = 4

type ProgressController struct {
	Stats *services.StatsService
	Cfg   *config.Config
}

func NewProgressController(stats *services.StatsService, cfg *config.Config) *ProgressController {
	return &ProgressController{Stats: stats, Cfg: cfg}
}

type MonthlyProgress struct {
	Month   time.Month             `json:"month"`
	Year    int                    `json:"year"`
	Summary models.CalendarSummary `json:"summary"`
}

// GetProgress godoc
// @Summary Get user progress
// @Description Returns the calendar summary of each of the last 4 months, newest first
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	now := time.Now().In(pc.Cfg.Location)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, pc.Cfg.Location)
	months := make([]MonthlyProgress, 0, progressMonths)

	for i := 0; i < progressMonths; i++ {
		month := firstOfMonth.AddDate(0, -i, 0)
		cal, err := pc.Stats.Calendar(c.UserContext(), userID, month.Year(), int(month.Month()))
		if err != nil {
			return utils.HandleError(c, err)
		}
		months = append(months, MonthlyProgress{
			Month:   month.Month(),
			Year:    month.Year(),
			Summary: cal.Summary,
		})
	}

	return c.JSON(fiber.Map{
		"progress": months,
	})
}

// GetProgressOverview godoc
// @Summary Get progress overview
// @Description Returns headline totals of the user's progress
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/overview [get]
func (pc *ProgressController) GetProgressOverview(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	snapshot, err := pc.Stats.Snapshot(c.UserContext(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.JSON(fiber.Map{
		"currentStreak":         snapshot.CurrentStreak,
		"longestStreak":         snapshot.LongestStreak,
		"totalTestsCompleted":   snapshot.TotalTestsAttempted,
		"totalProblemsSolved":   snapshot.TotalDSAProblemsSolved,
		"totalStudyTimeMinutes": snapshot.TotalStudyTimeMinutes,
	})
}
