package analytics

import (
	"math/rand"
	"sort"
	"time"

	"prephub/backend/models"
)

// BonusPoints for completing a daily challenge of the given difficulty.
func BonusPoints(difficulty string) int {
	switch difficulty {
	case models.DifficultyHard:
		return 100
	case models.DifficultyMedium:
		return 75
	default:
		return 50
	}
}

// PickProblem chooses the challenge problem for date. The choice is seeded by
// the date alone, so the same catalog and date always give the same problem.
func PickProblem(problems []models.Problem, date time.Time) (models.Problem, bool) {
	if len(problems) == 0 {
		return models.Problem{}, false
	}
	ordered := make([]models.Problem, len(problems))
	copy(ordered, problems)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	y, m, d := date.Date()
	seed := int64(y)*10000 + int64(m)*100 + int64(d)
	r := rand.New(rand.NewSource(seed))
	return ordered[r.Intn(len(ordered))], true
}
