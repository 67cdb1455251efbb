package models

import "time"

// UserStatsSnapshot is derived from the attempt history on every request and
// never stored.
type UserStatsSnapshot struct {
	TotalAttempts             int         `json:"totalAttempts"`
	TotalTestsAttempted       int         `json:"totalTestsAttempted"`
	TotalDSAProblemsAttempted int         `json:"totalDSAProblemsAttempted"`
	TotalDSAProblemsSolved    int         `json:"totalDSAProblemsSolved"`
	DSASuccessRate            int         `json:"dsaSuccessRate"`
	OverallAccuracy           int         `json:"overallAccuracy"`
	AverageScore              int         `json:"averageScore"`
	TotalStudyTimeMinutes     int         `json:"totalStudyTimeMinutes"`
	CurrentStreak             int         `json:"currentStreak"`
	LongestStreak             int         `json:"longestStreak"`
	LastActiveDate            *time.Time  `json:"lastActiveDate,omitempty"`
	WeeklyStats               WeeklyStats `json:"weeklyStats"`
}

// WeeklyStats applies the snapshot formulas to the trailing seven days.
type WeeklyStats struct {
	TestsAttempted       int `json:"testsAttempted"`
	DSAProblemsAttempted int `json:"dsaProblemsAttempted"`
	DSAProblemsSolved    int `json:"dsaProblemsSolved"`
	DSASuccessRate       int `json:"dsaSuccessRate"`
	Accuracy             int `json:"accuracy"`
	StudyTimeMinutes     int `json:"studyTimeMinutes"`
	ActiveDays           int `json:"activeDays"`
}

type AttemptSummary struct {
	ID               uint      `json:"id"`
	TestType         TestType  `json:"testType"`
	Title            string    `json:"title,omitempty"`
	Exam             string    `json:"exam,omitempty"`
	Subject          string    `json:"subject,omitempty"`
	Chapter          string    `json:"chapter,omitempty"`
	Topic            string    `json:"topic,omitempty"`
	Difficulty       string    `json:"difficulty,omitempty"`
	Score            float64   `json:"score"`
	MaxScore         float64   `json:"maxScore"`
	Accuracy         int       `json:"accuracy"`
	TimeTakenSeconds int       `json:"timeTakenSeconds"`
	AttemptedAt      time.Time `json:"attemptedAt"`
}

func NewAttemptSummary(a Attempt) AttemptSummary {
	return AttemptSummary{
		ID:               a.ID,
		TestType:         a.TestType,
		Title:            a.Title,
		Exam:             a.Exam,
		Subject:          a.Subject,
		Chapter:          a.Chapter,
		Topic:            a.Topic,
		Difficulty:       a.Difficulty,
		Score:            a.Score,
		MaxScore:         a.MaxScore,
		Accuracy:         int(a.Accuracy() + 0.5),
		TimeTakenSeconds: a.TimeTakenSeconds,
		AttemptedAt:      a.AttemptedAt,
	}
}

type GoalsAchieved struct {
	MockTests    bool `json:"mockTests"`
	DSAProblems  bool `json:"dsaProblems"`
	StudyMinutes bool `json:"studyMinutes"`
}

type CalendarDay struct {
	Date                  string           `json:"date"` // YYYY-MM-DD
	Day                   int              `json:"day"`
	MockTestsAttempted    int              `json:"mockTestsAttempted"`
	DSAProblemsAttempted  int              `json:"dsaProblemsAttempted"`
	DSAProblemsSolved     int              `json:"dsaProblemsSolved"`
	TotalTimeSpentMinutes int              `json:"totalTimeSpentMinutes"`
	IsActive              bool             `json:"isActive"`
	IsFuture              bool             `json:"isFuture"`
	GoalsAchieved         GoalsAchieved    `json:"goalsAchieved"`
	Tests                 []AttemptSummary `json:"tests"`
}

type CalendarSummary struct {
	ActiveDays             int `json:"activeDays"`
	TotalMockTests         int `json:"totalMockTests"`
	TotalDSAProblems       int `json:"totalDSAProblems"`
	TotalDSASolved         int `json:"totalDSASolved"`
	TotalTimeMinutes       int `json:"totalTimeMinutes"`
	MockTestGoalDays       int `json:"mockTestGoalDays"`
	DSAProblemGoalDays     int `json:"dsaProblemGoalDays"`
	StudyMinuteGoalDays    int `json:"studyMinuteGoalDays"`
	AllGoalsDays           int `json:"allGoalsDays"`
	LongestStreakThisMonth int `json:"longestStreakThisMonth"`
}

type Calendar struct {
	CalendarData []CalendarDay   `json:"calendarData"`
	Summary      CalendarSummary `json:"summary"`
	MonthName    string          `json:"monthName"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
}
