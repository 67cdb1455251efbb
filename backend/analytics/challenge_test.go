package analytics

import (
	"testing"
	"time"

	"prephub/backend/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func problem(id uint, difficulty string) models.Problem {
	return models.Problem{Model: gorm.Model{ID: id}, Title: "p", Difficulty: difficulty, IsActive: true}
}

func TestBonusPoints(t *testing.T) {
	assert.Equal(t, 100, BonusPoints(models.DifficultyHard))
	assert.Equal(t, 75, BonusPoints(models.DifficultyMedium))
	assert.Equal(t, 50, BonusPoints(models.DifficultyEasy))
	assert.Equal(t, 50, BonusPoints(""))
}

func TestPickProblemIsDeterministicPerDate(t *testing.T) {
	problems := []models.Problem{
		problem(1, models.DifficultyEasy),
		problem(2, models.DifficultyMedium),
		problem(3, models.DifficultyHard),
		problem(4, models.DifficultyEasy),
		problem(5, models.DifficultyMedium),
	}
	shuffled := []models.Problem{problems[3], problems[0], problems[4], problems[2], problems[1]}
	d := date(2024, time.March, 15)

	first, ok := PickProblem(problems, d)
	assert.True(t, ok)
	again, _ := PickProblem(shuffled, d)
	assert.Equal(t, first.ID, again.ID)

	// not every day lands on the same problem
	picked := map[uint]bool{}
	for i := 0; i < 30; i++ {
		p, _ := PickProblem(problems, d.AddDate(0, 0, i))
		picked[p.ID] = true
	}
	assert.Greater(t, len(picked), 1)
}

func TestPickProblemEmptyCatalog(t *testing.T) {
	_, ok := PickProblem(nil, date(2024, time.March, 15))
	assert.False(t, ok)
}
