package analytics

import (
	"math"
	"testing"
	"time"

	"prephub/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOrderAndTieBreaks(t *testing.T) {
	scores := []models.UserScore{
		{UserID: 4, UserName: "dan", TotalScore: 150, Accuracy: 70},
		{UserID: 2, UserName: "bob", TotalScore: 200, Accuracy: 60},
		{UserID: 3, UserName: "cat", TotalScore: 150, Accuracy: 70},
		{UserID: 1, UserName: "amy", TotalScore: 150, Accuracy: 90},
	}

	entries := Rank(scores)

	require.Len(t, entries, 4)
	var got []uint
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
		got = append(got, e.UserID)
	}
	assert.Equal(t, []uint{2, 1, 3, 4}, got)

	// same input, different order, same ranking
	reversed := []models.UserScore{scores[3], scores[2], scores[1], scores[0]}
	assert.Equal(t, entries, Rank(reversed))
}

func TestRankRoundsAccuracyButOrdersByExact(t *testing.T) {
	entries := Rank([]models.UserScore{
		{UserID: 1, TotalScore: 10, Accuracy: 66.6},
		{UserID: 2, TotalScore: 10, Accuracy: 66.7},
	})

	assert.Equal(t, uint(2), entries[0].UserID)
	assert.Equal(t, 67, entries[0].OverallAccuracy)
	assert.Equal(t, 67, entries[1].OverallAccuracy)
}

func TestParseTimeframe(t *testing.T) {
	for raw, want := range map[string]Timeframe{
		"":      TimeframeAll,
		"all":   TimeframeAll,
		"Week":  TimeframeWeek,
		"today": TimeframeToday,
		"month": TimeframeMonth,
	} {
		tf, err := ParseTimeframe(raw)
		assert.NoError(t, err)
		assert.Equal(t, want, tf)
	}

	_, err := ParseTimeframe("decade")
	assert.Error(t, err)
}

func TestTimeframeSince(t *testing.T) {
	assert.Nil(t, TimeframeAll.Since(now, time.UTC))

	today := TimeframeToday.Since(now, time.UTC)
	require.NotNil(t, today)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *today)

	week := TimeframeWeek.Since(now, time.UTC)
	require.NotNil(t, week)
	assert.Equal(t, now.AddDate(0, 0, -7), *week)
}

func TestClampPageAndPaginate(t *testing.T) {
	page, size := ClampPage(0, 0, 100)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageSize, size)

	_, size = ClampPage(2, 1000, 100)
	assert.Equal(t, 100, size)

	var scores []models.UserScore
	for i := 1; i <= 5; i++ {
		scores = append(scores, models.UserScore{UserID: uint(i), TotalScore: float64(100 - i)})
	}
	entries := Rank(scores)

	p := Paginate(entries, 2, 2)
	require.Len(t, p.Data, 2)
	assert.Equal(t, 3, p.Data[0].Rank)
	assert.Equal(t, int64(5), p.Pagination.Total)
	assert.Equal(t, 3, p.Pagination.TotalPages)

	past := Paginate(entries, 9, 2)
	assert.Empty(t, past.Data)
	assert.Equal(t, int64(5), past.Pagination.Total)
}

func TestHugePageIsClampedNotOverflowed(t *testing.T) {
	page, size := ClampPage(math.MaxInt64/10, 20, 100)
	assert.Equal(t, 20, size)
	assert.Positive(t, (page-1)*size)

	entries := Rank([]models.UserScore{{UserID: 1, TotalScore: 10}})
	var p models.LeaderboardPage
	require.NotPanics(t, func() { p = Paginate(entries, page, size) })
	assert.Empty(t, p.Data)
	assert.Equal(t, int64(1), p.Pagination.Total)

	assert.NotPanics(t, func() { Paginate(entries, math.MaxInt, 1) })
}
