package services

import (
	"testing"
	"time"

	"prephub/backend/analytics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardScopesAndPaging(t *testing.T) {
	f := newFixture(t)
	f.cfg.TopPerformers = 2
	f.leaderboard = NewLeaderboardService(f.leaderboard.scores, f.cfg, fixedClock)

	amy := f.user(t, "amy")
	bob := f.user(t, "bob")
	cat := f.user(t, "cat")

	record := func(userID uint, exam string, score float64, correct int, at time.Time) {
		a := mockAttempt(score, correct, at)
		a.Exam = exam
		_, err := f.attempts.Record(ctx, userID, a)
		require.NoError(t, err)
	}
	record(amy.ID, "JEE", 90, 9, testNow.AddDate(0, 0, -20))
	record(bob.ID, "JEE", 50, 5, testNow.Add(-time.Hour))
	record(bob.ID, "NEET", 30, 3, testNow.Add(-time.Hour))
	record(cat.ID, "NEET", 80, 8, testNow.AddDate(0, 0, -3))

	page, err := f.leaderboard.Leaderboard(ctx, analytics.Scope{}, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Equal(t, amy.ID, page.Data[0].UserID) // 90, accuracy 90
	assert.Equal(t, cat.ID, page.Data[1].UserID) // 80, accuracy 80
	assert.Equal(t, bob.ID, page.Data[2].UserID) // 80, accuracy 40
	assert.Equal(t, 3, page.Data[2].Rank)

	again, err := f.leaderboard.Leaderboard(ctx, analytics.Scope{}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, page, again)

	week, err := f.leaderboard.Leaderboard(ctx, analytics.Scope{Timeframe: analytics.TimeframeWeek}, 1, 20)
	require.NoError(t, err)
	require.Len(t, week.Data, 2)
	assert.Equal(t, bob.ID, week.Data[1].UserID)

	neet, err := f.leaderboard.Leaderboard(ctx, analytics.Scope{Exam: "NEET"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, neet.Data, 2)
	assert.Equal(t, cat.ID, neet.Data[0].UserID)

	clamped, err := f.leaderboard.Leaderboard(ctx, analytics.Scope{}, 0, 100000)
	require.NoError(t, err)
	assert.Equal(t, 1, clamped.Pagination.Page)
	assert.Equal(t, f.cfg.LeaderboardMaxPageSize, clamped.Pagination.PageSize)

	second, err := f.leaderboard.Leaderboard(ctx, analytics.Scope{}, 2, 2)
	require.NoError(t, err)
	require.Len(t, second.Data, 1)
	assert.Equal(t, 3, second.Data[0].Rank)

	top, err := f.leaderboard.TopPerformers(ctx)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, amy.ID, top[0].UserID)

	filters, err := f.leaderboard.Filters(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"JEE", "NEET"}, filters.Exams)
}
