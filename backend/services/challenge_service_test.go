package services

import (
	"sync"
	"testing"
	"time"

	"prephub/backend/events"
	"prephub/backend/models"
	"prephub/backend/repository"
	"prephub/backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodaySchedulesOnce(t *testing.T) {
	f := newFixture(t)
	f.problem(t, "Two Sum", models.DifficultyEasy)
	f.problem(t, "LRU Cache", models.DifficultyHard)
	f.problem(t, "Merge Intervals", models.DifficultyMedium)

	first, err := f.challenges.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), first.Date.UTC())
	assert.Equal(t, 1, f.publisher.count(events.ChallengeScheduled))

	second, err := f.challenges.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ProblemID, second.ProblemID)
	assert.Equal(t, 1, f.publisher.count(events.ChallengeScheduled))
}

func TestScheduleRaceForSameDate(t *testing.T) {
	f := newFixture(t)
	f.problem(t, "Two Sum", models.DifficultyEasy)
	f.problem(t, "LRU Cache", models.DifficultyHard)
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	const callers = 8
	ids := make([]uint, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ch, err := f.challenges.ForDate(ctx, date)
			if assert.NoError(t, err) {
				ids[i] = ch.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	n, err := repository.NewChallengeRepository(f.db).CountByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 1, f.publisher.count(events.ChallengeScheduled))
}

func TestTodayWithoutProblems(t *testing.T) {
	f := newFixture(t)

	_, err := f.challenges.Today(ctx)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestChallengeIsFrozenAfterScheduling(t *testing.T) {
	f := newFixture(t)
	p := f.problem(t, "LRU Cache", models.DifficultyHard)

	view, err := f.challenges.View(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, view.BonusPoints)
	assert.Equal(t, "LRU Cache", view.Problem.Title)

	require.NoError(t, f.db.Model(&p).Updates(map[string]interface{}{"is_active": false, "difficulty": models.DifficultyEasy}).Error)

	view, err = f.challenges.View(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, p.ID, view.Problem.ID)
	assert.Equal(t, 100, view.BonusPoints)
	assert.Equal(t, models.DifficultyHard, view.Difficulty)
}

func TestViewWithoutSnapshotUsesCatalog(t *testing.T) {
	f := newFixture(t)
	p := f.problem(t, "Trapping Rain Water", models.DifficultyHard)
	require.NoError(t, f.db.Create(&models.DailyChallenge{
		Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		ProblemID:   p.ID,
		Difficulty:  p.Difficulty,
		BonusPoints: 100,
	}).Error)

	view, err := f.challenges.View(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, p.ID, view.Problem.ID)
	assert.Equal(t, "Trapping Rain Water", view.Problem.Title)
	assert.Equal(t, 0, f.publisher.count(events.ChallengeScheduled))

	require.NoError(t, f.db.Delete(&p).Error)
	view, err = f.challenges.View(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, p.ID, view.Problem.ID)
	assert.Empty(t, view.Problem.Title)
}

func TestParticipateIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.problem(t, "Two Sum", models.DifficultyEasy)
	u := f.user(t, "amy")

	view, err := f.challenges.Participate(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, view.UserParticipating)
	assert.Equal(t, int64(1), view.TotalParticipants)

	view, err = f.challenges.Participate(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.TotalParticipants)

	var n int64
	require.NoError(t, f.db.Model(&models.DailyChallengeParticipant{}).Where("user_id = ?", u.ID).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestCompleteRequiresParticipation(t *testing.T) {
	f := newFixture(t)
	f.problem(t, "Two Sum", models.DifficultyMedium)
	u := f.user(t, "amy")

	_, err := f.challenges.Complete(ctx, u.ID)
	assert.ErrorIs(t, err, utils.ErrInvalidState)
	assert.Equal(t, 0, f.publisher.count(events.ChallengeCompleted))

	_, err = f.challenges.Participate(ctx, u.ID)
	require.NoError(t, err)

	view, err := f.challenges.Complete(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, view.UserCompleted)
	assert.Equal(t, 75, view.BonusPoints)
	require.NotNil(t, view.CompletedAt)
	assert.True(t, view.CompletedAt.Equal(testNow))

	view, err = f.challenges.Complete(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, view.UserCompleted)
	assert.Equal(t, int64(1), view.TotalCompletions)
	assert.Equal(t, 1, f.publisher.count(events.ChallengeCompleted))

	// joining again after finishing is a no-op that reports completion
	view, err = f.challenges.Participate(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, view.UserCompleted)
	assert.Equal(t, int64(1), view.TotalParticipants)
}
