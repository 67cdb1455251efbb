package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"prephub/backend/models"
)

type Timeframe string

const (
	TimeframeToday Timeframe = "today"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeAll   Timeframe = "all"
)

// ParseTimeframe accepts an empty value as all-time.
func ParseTimeframe(raw string) (Timeframe, error) {
	switch tf := Timeframe(strings.ToLower(strings.TrimSpace(raw))); tf {
	case "", TimeframeAll:
		return TimeframeAll, nil
	case TimeframeToday, TimeframeWeek, TimeframeMonth:
		return tf, nil
	default:
		return "", fmt.Errorf("unknown timeframe %q", raw)
	}
}

// Since returns the lower bound for attempts in the timeframe, nil for all-time.
func (tf Timeframe) Since(now time.Time, loc *time.Location) *time.Time {
	if loc == nil {
		loc = time.UTC
	}
	var since time.Time
	switch tf {
	case TimeframeToday:
		local := now.In(loc)
		since = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	case TimeframeWeek:
		since = now.AddDate(0, 0, -7)
	case TimeframeMonth:
		since = now.AddDate(0, -1, 0)
	default:
		return nil
	}
	since = since.UTC()
	return &since
}

// Scope narrows which attempts contribute to a ranking.
type Scope struct {
	Exam      string
	Subject   string
	Chapter   string
	Timeframe Timeframe
}

func (s Scope) Unfiltered() bool {
	return s.Exam == "" && s.Subject == "" && s.Chapter == "" &&
		(s.Timeframe == "" || s.Timeframe == TimeframeAll)
}

// Rank orders users by total score, then accuracy, then user id, and assigns
// dense 1-based ranks by position. Identical input always yields identical output.
func Rank(scores []models.UserScore) []models.LeaderboardEntry {
	sorted := make([]models.UserScore, len(scores))
	copy(sorted, scores)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		if a.Accuracy != b.Accuracy {
			return a.Accuracy > b.Accuracy
		}
		return a.UserID < b.UserID
	})

	entries := make([]models.LeaderboardEntry, len(sorted))
	for i, s := range sorted {
		entries[i] = models.LeaderboardEntry{
			Rank:            i + 1,
			UserID:          s.UserID,
			UserName:        s.UserName,
			TotalScore:      s.TotalScore,
			OverallAccuracy: round(s.Accuracy),
			TestsAttempted:  s.Attempts,
			AccuracyExact:   s.Accuracy,
		}
	}
	return entries
}

const DefaultPageSize = 20

// ClampPage pulls page and pageSize into range instead of rejecting them.
func ClampPage(page, pageSize, maxPageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxPageSize > 0 && pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	// keeps (page-1)*pageSize representable
	if lastPage := math.MaxInt / pageSize; page > lastPage {
		page = lastPage
	}
	return page, pageSize
}

// Paginate slices ranked entries; a page past the end is empty.
func Paginate(entries []models.LeaderboardEntry, page, pageSize int) models.LeaderboardPage {
	total := len(entries)
	start := total
	if page > 0 && pageSize > 0 && page-1 < (total+pageSize-1)/pageSize {
		start = (page - 1) * pageSize
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	data := make([]models.LeaderboardEntry, end-start)
	copy(data, entries[start:end])
	return models.LeaderboardPage{
		Data: data,
		Pagination: models.Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      int64(total),
			TotalPages: (total + pageSize - 1) / pageSize,
		},
	}
}
