package analytics

import (
	"sort"
	"time"

	"prephub/backend/models"
)

const day = 24 * time.Hour

// DayOf returns the calendar date of t in loc, encoded as midnight UTC so that
// consecutive dates are exactly 24h apart regardless of DST.
func DayOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ActiveDates returns the distinct dates holding at least one attempt, ascending.
func ActiveDates(attempts []models.Attempt, loc *time.Location) []time.Time {
	seen := make(map[time.Time]struct{}, len(attempts))
	dates := make([]time.Time, 0, len(attempts))
	for _, a := range attempts {
		d := DayOf(a.AttemptedAt, loc)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Streaks computes the current and longest run of consecutive active dates.
// dates must be distinct day values as produced by ActiveDates. The current
// streak stays alive while its last day is today or yesterday. Days after
// today (clock skew, client supplied timestamps) are not counted.
func Streaks(dates []time.Time, today time.Time) (current, longest int) {
	for len(dates) > 0 && dates[len(dates)-1].After(today) {
		dates = dates[:len(dates)-1]
	}
	if len(dates) == 0 {
		return 0, 0
	}

	run := 1
	longest = 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == day {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	last := dates[len(dates)-1]
	if gap := today.Sub(last); gap == 0 || gap == day {
		current = run
	}
	return current, longest
}
