package controllers

import (
	"strings"

	"prephub/backend/models"
	"prephub/backend/repository"
	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type OverviewController struct {
	Problems *repository.ProblemRepository
}

func NewOverviewController(problems *repository.ProblemRepository) *OverviewController {
	return &OverviewController{Problems: problems}
}

// SearchProblems returns active practice problems matching the search criteria
func (oc *OverviewController) SearchProblems(c *fiber.Ctx) error {
	difficulty := strings.ToLower(c.Query("difficulty"))
	switch difficulty {
	case "", models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	default:
		return utils.HandleError(c, utils.ValidationErr("unknown difficulty %q", difficulty))
	}

	problems, err := oc.Problems.Search(c.UserContext(), repository.ProblemSearch{
		Search:     strings.TrimSpace(c.Query("search")),
		Topic:      c.Query("topic"),
		Difficulty: difficulty,
		Sort:       c.Query("sort", "id"), // id, newest, title, difficulty
	})
	if err != nil {
		return utils.HandleError(c, err)
	}

	result := make([]fiber.Map, 0, len(problems))
	for _, p := range problems {
		result = append(result, fiber.Map{
			"id":         p.ID,
			"title":      p.Title,
			"topic":      p.Topic,
			"difficulty": p.Difficulty,
		})
	}
	return c.JSON(fiber.Map{"problems": result})
}
