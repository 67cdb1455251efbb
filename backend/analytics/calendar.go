package analytics

import (
	"sort"
	"time"

	"prephub/backend/models"
)

// Goals are the daily targets; a zero target never counts as achieved.
type Goals struct {
	MockTests    int
	DSAProblems  int
	StudyMinutes int
}

// ClampMonth pulls an out-of-range year/month back into range instead of failing.
func ClampMonth(year, month int) (int, int) {
	switch {
	case month < 1:
		month = 1
	case month > 12:
		month = 12
	}
	switch {
	case year < 1970:
		year = 1970
	case year > 9999:
		year = 9999
	}
	return year, month
}

// BuildCalendar buckets attempts into one CalendarDay per date of the month.
// Days after today are present but inert.
func BuildCalendar(attempts []models.Attempt, year, month int, now time.Time, goals Goals, opts StatsOptions) models.Calendar {
	year, month = ClampMonth(year, month)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today := DayOf(now, opts.Location)

	byDay := make(map[time.Time][]models.Attempt)
	for _, a := range attempts {
		d := DayOf(a.AttemptedAt, opts.Location)
		if d.Year() != year || int(d.Month()) != month {
			continue
		}
		byDay[d] = append(byDay[d], a)
	}

	cal := models.Calendar{
		CalendarData: make([]models.CalendarDay, 0, daysInMonth),
		MonthName:    first.Month().String(),
		Month:        month,
		Year:         year,
	}

	var activeDates []time.Time
	for i := 0; i < daysInMonth; i++ {
		date := first.AddDate(0, 0, i)
		cd := models.CalendarDay{
			Date:  date.Format("2006-01-02"),
			Day:   i + 1,
			Tests: []models.AttemptSummary{},
		}
		if date.After(today) {
			cd.IsFuture = true
			cal.CalendarData = append(cal.CalendarData, cd)
			continue
		}

		dayAttempts := byDay[date]
		sort.SliceStable(dayAttempts, func(i, j int) bool {
			return dayAttempts[i].AttemptedAt.Before(dayAttempts[j].AttemptedAt)
		})

		seconds := 0
		for _, a := range dayAttempts {
			switch a.TestType {
			case models.TestTypeMockTest:
				cd.MockTestsAttempted++
			case models.TestTypeDSA:
				cd.DSAProblemsAttempted++
				if a.Accuracy() >= opts.SolvedThreshold {
					cd.DSAProblemsSolved++
				}
			}
			seconds += a.TimeTakenSeconds
			cd.Tests = append(cd.Tests, models.NewAttemptSummary(a))
		}
		cd.TotalTimeSpentMinutes = round(float64(seconds) / 60)
		cd.IsActive = len(dayAttempts) > 0
		cd.GoalsAchieved = models.GoalsAchieved{
			MockTests:    reached(cd.MockTestsAttempted, goals.MockTests),
			DSAProblems:  reached(cd.DSAProblemsAttempted, goals.DSAProblems),
			StudyMinutes: reached(cd.TotalTimeSpentMinutes, goals.StudyMinutes),
		}

		if cd.IsActive {
			activeDates = append(activeDates, date)
		}
		addToSummary(&cal.Summary, cd)
		cal.CalendarData = append(cal.CalendarData, cd)
	}

	_, cal.Summary.LongestStreakThisMonth = Streaks(activeDates, today)
	return cal
}

func reached(value, target int) bool {
	return target > 0 && value >= target
}

func addToSummary(s *models.CalendarSummary, cd models.CalendarDay) {
	if cd.IsActive {
		s.ActiveDays++
	}
	s.TotalMockTests += cd.MockTestsAttempted
	s.TotalDSAProblems += cd.DSAProblemsAttempted
	s.TotalDSASolved += cd.DSAProblemsSolved
	s.TotalTimeMinutes += cd.TotalTimeSpentMinutes

	g := cd.GoalsAchieved
	if g.MockTests {
		s.MockTestGoalDays++
	}
	if g.DSAProblems {
		s.DSAProblemGoalDays++
	}
	if g.StudyMinutes {
		s.StudyMinuteGoalDays++
	}
	if g.MockTests && g.DSAProblems && g.StudyMinutes {
		s.AllGoalsDays++
	}
}
