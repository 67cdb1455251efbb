package services

import (
	"sync"
	"testing"
	"time"

	"prephub/backend/events"
	"prephub/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func badgeNames(earned []models.EarnedAchievement) []string {
	names := make([]string, 0, len(earned))
	for _, e := range earned {
		names = append(names, e.BadgeName)
	}
	return names
}

func TestEvaluateAwardsOnce(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "amy")
	require.NoError(t, f.db.Create(&models.Attempt{
		UserID: u.ID, TestType: models.TestTypeMockTest, Score: 80, MaxScore: 100,
		CorrectAnswers: 8, TotalQuestions: 10, TimeTakenSeconds: 3600, AttemptedAt: testNow,
	}).Error)

	newly, earned, _, err := f.achievements.Evaluate(ctx, u.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"first_steps", "study_60"}, badgeNames(newly))
	assert.Len(t, earned, 2)

	newly, earned, _, err = f.achievements.Evaluate(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, newly)
	assert.Len(t, earned, 2)

	assert.Equal(t, 2, f.publisher.count(events.AchievementUnlocked))
}

func TestEvaluateConcurrentCallsNeverDuplicate(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "amy")
	require.NoError(t, f.db.Create(&models.Attempt{
		UserID: u.ID, TestType: models.TestTypeMockTest, Score: 80, MaxScore: 100,
		CorrectAnswers: 8, TotalQuestions: 10, AttemptedAt: testNow,
	}).Error)

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _, err := f.achievements.Evaluate(ctx, u.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var n int64
	require.NoError(t, f.db.Model(&models.EarnedAchievement{}).
		Where("user_id = ? AND badge_name = ?", u.ID, "first_steps").Count(&n).Error)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 1, f.publisher.count(events.AchievementUnlocked))
}

func TestEarnedBadgeSurvivesRegression(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "amy")
	require.NoError(t, f.db.Create(&models.EarnedAchievement{
		UserID: u.ID, BadgeName: "streak_7", EarnedDate: testNow.AddDate(0, -1, 0),
	}).Error)

	view, err := f.achievements.Overview(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"streak_7"}, badgeNames(view.Earned))
	assert.Empty(t, view.NewlyEarned)

	for _, p := range view.Catalog {
		if p.ID == "streak_7" {
			assert.True(t, p.Earned)
			assert.Equal(t, 100, p.Progress)
			require.NotNil(t, p.EarnedDate)
			assert.True(t, p.EarnedDate.Equal(testNow.AddDate(0, -1, 0)))
		}
		if p.ID == "streak_3" {
			assert.False(t, p.Earned)
			assert.Equal(t, 0, p.Progress)
		}
	}
}

func TestOverviewReportsProgress(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "amy")
	for i := 0; i < 5; i++ {
		_, err := f.attempts.Record(ctx, u.ID, mockAttempt(50, 5, testNow.Add(time.Duration(-i)*time.Minute)))
		require.NoError(t, err)
	}

	view, err := f.achievements.Overview(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, view.NewlyEarned, "badges were already awarded while recording")
	for _, p := range view.Catalog {
		if p.ID == "test_taker_10" {
			assert.Equal(t, 50, p.Progress)
			assert.False(t, p.Earned)
		}
	}
}
