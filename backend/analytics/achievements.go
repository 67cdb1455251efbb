package analytics

import (
	"math"

	"prephub/backend/models"
)

type CriterionKind string

const (
	KindCount      CriterionKind = "count"
	KindPercentage CriterionKind = "percentage"
	KindStreak     CriterionKind = "streak"
)

// Metric names the snapshot field a criterion reads.
type Metric string

const (
	MetricTestsAttempted Metric = "tests_attempted"
	MetricProblemsSolved Metric = "problems_solved"
	MetricStudyMinutes   Metric = "study_minutes"
	MetricAccuracy       Metric = "accuracy"
	MetricLongestStreak  Metric = "longest_streak"
)

// Criterion is a single threshold predicate over a snapshot. Build it with
// CountAtLeast, AccuracyAtLeast or StreakAtLeast.
type Criterion struct {
	Kind      CriterionKind `json:"kind"`
	Metric    Metric        `json:"metric"`
	Threshold int           `json:"threshold"`
	// Percentage criteria only apply once this many attempts exist.
	MinAttempts int `json:"minAttempts,omitempty"`
}

func CountAtLeast(metric Metric, n int) Criterion {
	return Criterion{Kind: KindCount, Metric: metric, Threshold: n}
}

func AccuracyAtLeast(pct, minAttempts int) Criterion {
	return Criterion{Kind: KindPercentage, Metric: MetricAccuracy, Threshold: pct, MinAttempts: minAttempts}
}

func StreakAtLeast(days int) Criterion {
	return Criterion{Kind: KindStreak, Metric: MetricLongestStreak, Threshold: days}
}

func (c Criterion) value(s models.UserStatsSnapshot) int {
	switch c.Metric {
	case MetricTestsAttempted:
		return s.TotalTestsAttempted
	case MetricProblemsSolved:
		return s.TotalDSAProblemsSolved
	case MetricStudyMinutes:
		return s.TotalStudyTimeMinutes
	case MetricAccuracy:
		return s.OverallAccuracy
	case MetricLongestStreak:
		return s.LongestStreak
	}
	return 0
}

// Met reports whether the snapshot satisfies the criterion.
func (c Criterion) Met(s models.UserStatsSnapshot) bool {
	switch c.Kind {
	case KindCount, KindStreak:
		return c.value(s) >= c.Threshold
	case KindPercentage:
		return s.TotalAttempts >= c.MinAttempts && s.TotalAttempts > 0 && c.value(s) >= c.Threshold
	}
	return false
}

// Progress is min(current/threshold*100, 100). Display only.
func (c Criterion) Progress(s models.UserStatsSnapshot) int {
	if c.Threshold <= 0 {
		return 100
	}
	p := float64(c.value(s)) / float64(c.Threshold) * 100
	return int(math.Min(math.Floor(p), 100))
}

type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Rarity      string    `json:"rarity"`
	Criterion   Criterion `json:"criteria"`
}

var catalog = []Achievement{
	{ID: "first_steps", Name: "First Steps", Description: "Attempt your first mock test", Category: "tests", Rarity: "common", Criterion: CountAtLeast(MetricTestsAttempted, 1)},
	{ID: "test_taker_10", Name: "Dedicated Learner", Description: "Attempt 10 mock tests", Category: "tests", Rarity: "common", Criterion: CountAtLeast(MetricTestsAttempted, 10)},
	{ID: "test_taker_50", Name: "Test Marathoner", Description: "Attempt 50 mock tests", Category: "tests", Rarity: "rare", Criterion: CountAtLeast(MetricTestsAttempted, 50)},
	{ID: "test_taker_100", Name: "Centurion", Description: "Attempt 100 mock tests", Category: "tests", Rarity: "epic", Criterion: CountAtLeast(MetricTestsAttempted, 100)},
	{ID: "solver_1", Name: "Hello World", Description: "Solve your first DSA problem", Category: "coding", Rarity: "common", Criterion: CountAtLeast(MetricProblemsSolved, 1)},
	{ID: "solver_25", Name: "Problem Solver", Description: "Solve 25 DSA problems", Category: "coding", Rarity: "rare", Criterion: CountAtLeast(MetricProblemsSolved, 25)},
	{ID: "solver_100", Name: "Algorithm Ace", Description: "Solve 100 DSA problems", Category: "coding", Rarity: "epic", Criterion: CountAtLeast(MetricProblemsSolved, 100)},
	{ID: "accuracy_80", Name: "Sharpshooter", Description: "Keep 80% overall accuracy over at least 10 attempts", Category: "accuracy", Rarity: "rare", Criterion: AccuracyAtLeast(80, 10)},
	{ID: "accuracy_95", Name: "Perfectionist", Description: "Keep 95% overall accuracy over at least 20 attempts", Category: "accuracy", Rarity: "legendary", Criterion: AccuracyAtLeast(95, 20)},
	{ID: "streak_3", Name: "On a Roll", Description: "Study 3 days in a row", Category: "streak", Rarity: "common", Criterion: StreakAtLeast(3)},
	{ID: "streak_7", Name: "Week Warrior", Description: "Study 7 days in a row", Category: "streak", Rarity: "rare", Criterion: StreakAtLeast(7)},
	{ID: "streak_30", Name: "Unstoppable", Description: "Study 30 days in a row", Category: "streak", Rarity: "legendary", Criterion: StreakAtLeast(30)},
	{ID: "study_60", Name: "Hour of Power", Description: "Spend 60 minutes studying", Category: "time", Rarity: "common", Criterion: CountAtLeast(MetricStudyMinutes, 60)},
	{ID: "study_600", Name: "Deep Diver", Description: "Spend 10 hours studying", Category: "time", Rarity: "rare", Criterion: CountAtLeast(MetricStudyMinutes, 600)},
	{ID: "study_3000", Name: "Scholar", Description: "Spend 50 hours studying", Category: "time", Rarity: "epic", Criterion: CountAtLeast(MetricStudyMinutes, 3000)},
}

// Catalog returns a copy of the static achievement catalog.
func Catalog() []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	return out
}

func FindAchievement(id string) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// NewlyQualified returns catalog entries the snapshot satisfies that are not
// in earned. Earned badges are never revisited, so a later drop in accuracy or
// streak cannot take one away.
func NewlyQualified(s models.UserStatsSnapshot, earned []models.EarnedAchievement) []Achievement {
	have := make(map[string]struct{}, len(earned))
	for _, e := range earned {
		have[e.BadgeName] = struct{}{}
	}

	var qualified []Achievement
	for _, a := range catalog {
		if _, ok := have[a.ID]; ok {
			continue
		}
		if a.Criterion.Met(s) {
			qualified = append(qualified, a)
		}
	}
	return qualified
}
