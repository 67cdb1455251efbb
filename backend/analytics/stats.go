package analytics

import (
	"math"
	"time"

	"prephub/backend/models"
)

// StatsOptions carries the tunables of the aggregation.
type StatsOptions struct {
	// Minimum accuracy (percent) for a DSA attempt to count as solved.
	SolvedThreshold float64
	Location        *time.Location
}

// DefaultStatsOptions mirrors the config defaults.
func DefaultStatsOptions() StatsOptions {
	return StatsOptions{SolvedThreshold: 50, Location: time.UTC}
}

type counters struct {
	attempts     int
	mockTests    int
	dsaAttempted int
	dsaSolved    int
	accuracySum  float64
	scorePctSum  float64
	scoredCount  int
	studySeconds int
}

func (c *counters) add(a models.Attempt, threshold float64) {
	c.attempts++
	acc := a.Accuracy()
	c.accuracySum += acc
	if a.MaxScore > 0 {
		c.scorePctSum += a.Score / a.MaxScore * 100
		c.scoredCount++
	}
	c.studySeconds += a.TimeTakenSeconds

	switch a.TestType {
	case models.TestTypeMockTest:
		c.mockTests++
	case models.TestTypeDSA:
		c.dsaAttempted++
		if acc >= threshold {
			c.dsaSolved++
		}
	}
}

func (c counters) accuracy() int {
	if c.attempts == 0 {
		return 0
	}
	return round(c.accuracySum / float64(c.attempts))
}

func (c counters) successRate() int {
	return percent(c.dsaSolved, c.dsaAttempted)
}

func (c counters) studyMinutes() int {
	return round(float64(c.studySeconds) / 60)
}

// Aggregate folds a user's full attempt history into a snapshot. It has no
// side effects and returns a zeroed snapshot for an empty history.
func Aggregate(attempts []models.Attempt, now time.Time, opts StatsOptions) models.UserStatsSnapshot {
	var all, week counters
	weekStart := now.AddDate(0, 0, -7)
	var weekAttempts []models.Attempt

	for _, a := range attempts {
		all.add(a, opts.SolvedThreshold)
		if !a.AttemptedAt.Before(weekStart) && !a.AttemptedAt.After(now) {
			week.add(a, opts.SolvedThreshold)
			weekAttempts = append(weekAttempts, a)
		}
	}

	dates := ActiveDates(attempts, opts.Location)
	current, longest := Streaks(dates, DayOf(now, opts.Location))

	snapshot := models.UserStatsSnapshot{
		TotalAttempts:             all.attempts,
		TotalTestsAttempted:       all.mockTests,
		TotalDSAProblemsAttempted: all.dsaAttempted,
		TotalDSAProblemsSolved:    all.dsaSolved,
		DSASuccessRate:            all.successRate(),
		OverallAccuracy:           all.accuracy(),
		TotalStudyTimeMinutes:     all.studyMinutes(),
		CurrentStreak:             current,
		LongestStreak:             longest,
		WeeklyStats: models.WeeklyStats{
			TestsAttempted:       week.mockTests,
			DSAProblemsAttempted: week.dsaAttempted,
			DSAProblemsSolved:    week.dsaSolved,
			DSASuccessRate:       week.successRate(),
			Accuracy:             week.accuracy(),
			StudyTimeMinutes:     week.studyMinutes(),
			ActiveDays:           len(ActiveDates(weekAttempts, opts.Location)),
		},
	}
	if all.scoredCount > 0 {
		snapshot.AverageScore = round(all.scorePctSum / float64(all.scoredCount))
	}
	if len(dates) > 0 {
		last := dates[len(dates)-1]
		snapshot.LastActiveDate = &last
	}
	return snapshot
}

func round(v float64) int {
	return int(math.Round(v))
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return round(float64(part) / float64(whole) * 100)
}
