package analytics

import (
	"testing"

	"prephub/backend/models"

	"github.com/stretchr/testify/assert"
)

func ids(achievements []Achievement) []string {
	out := make([]string, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, a.ID)
	}
	return out
}

func earnedFrom(achievements []Achievement) []models.EarnedAchievement {
	out := make([]models.EarnedAchievement, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, models.EarnedAchievement{BadgeName: a.ID})
	}
	return out
}

func TestNewlyQualifiedIsIdempotent(t *testing.T) {
	snapshot := models.UserStatsSnapshot{
		TotalAttempts:          12,
		TotalTestsAttempted:    11,
		TotalDSAProblemsSolved: 1,
		OverallAccuracy:        85,
		LongestStreak:          3,
		TotalStudyTimeMinutes:  75,
	}

	first := NewlyQualified(snapshot, nil)
	assert.ElementsMatch(t,
		[]string{"first_steps", "test_taker_10", "solver_1", "accuracy_80", "streak_3", "study_60"},
		ids(first))

	second := NewlyQualified(snapshot, earnedFrom(first))
	assert.Empty(t, second)
}

func TestNewlyQualifiedNeverRevisitsEarned(t *testing.T) {
	// accuracy and streak regressed after the badges were earned
	snapshot := models.UserStatsSnapshot{TotalAttempts: 30, OverallAccuracy: 40}
	earned := []models.EarnedAchievement{{BadgeName: "accuracy_80"}, {BadgeName: "streak_7"}}

	assert.Empty(t, NewlyQualified(snapshot, earned))
}

func TestAccuracyNeedsMinimumAttempts(t *testing.T) {
	c := AccuracyAtLeast(80, 10)

	assert.False(t, c.Met(models.UserStatsSnapshot{TotalAttempts: 5, OverallAccuracy: 100}))
	assert.True(t, c.Met(models.UserStatsSnapshot{TotalAttempts: 10, OverallAccuracy: 80}))
	assert.False(t, c.Met(models.UserStatsSnapshot{TotalAttempts: 10, OverallAccuracy: 79}))
}

func TestCriterionProgress(t *testing.T) {
	c := CountAtLeast(MetricTestsAttempted, 10)

	assert.Equal(t, 0, c.Progress(models.UserStatsSnapshot{}))
	assert.Equal(t, 50, c.Progress(models.UserStatsSnapshot{TotalTestsAttempted: 5}))
	assert.Equal(t, 33, StreakAtLeast(3).Progress(models.UserStatsSnapshot{LongestStreak: 1}))
	assert.Equal(t, 100, c.Progress(models.UserStatsSnapshot{TotalTestsAttempted: 25}))
}

func TestCatalog(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Catalog() {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
		assert.Positive(t, a.Criterion.Threshold)
	}

	a, ok := FindAchievement("streak_7")
	assert.True(t, ok)
	assert.Equal(t, KindStreak, a.Criterion.Kind)

	_, ok = FindAchievement("nope")
	assert.False(t, ok)
}
