package models

// LeaderboardEntry is computed per request; Rank is the 1-based sort position.
type LeaderboardEntry struct {
	Rank            int     `json:"rank"`
	UserID          uint    `json:"userId"`
	UserName        string  `json:"userName"`
	TotalScore      float64 `json:"totalScore"`
	OverallAccuracy int     `json:"overallAccuracy"`
	TestsAttempted  int     `json:"testsAttempted"`

	// Unrounded accuracy, used only for ordering.
	AccuracyExact float64 `json:"-"`
}

// UserScore is the per-user aggregate the attempt store returns for a scope.
type UserScore struct {
	UserID     uint
	UserName   string
	TotalScore float64
	Accuracy   float64
	Attempts   int
}

type LeaderboardFilters struct {
	Exams    []string `json:"exams"`
	Subjects []string `json:"subjects"`
	Chapters []string `json:"chapters"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type LeaderboardPage struct {
	Data       []LeaderboardEntry `json:"data"`
	Pagination Pagination         `json:"pagination"`
}
