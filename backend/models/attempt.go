package models

import (
	"time"

	"gorm.io/gorm"
)

type TestType string

const (
	TestTypeMockTest TestType = "mocktest"
	TestTypeDSA      TestType = "dsa"
)

func (t TestType) Valid() bool {
	return t == TestTypeMockTest || t == TestTypeDSA
}

// Attempt is one submitted mock test or DSA problem. Rows are append-only.
type Attempt struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	UserID   uint     `gorm:"not null;index:idx_attempts_user_time,priority:1" json:"userId"`
	TestType TestType `gorm:"size:16;not null;index" json:"testType"`
	Title    string   `gorm:"size:255" json:"title,omitempty"`

	// mocktest scope
	Exam    string `gorm:"size:128;index" json:"exam,omitempty"`
	Subject string `gorm:"size:128;index" json:"subject,omitempty"`
	Chapter string `gorm:"size:128;index" json:"chapter,omitempty"`

	// dsa scope
	ProblemID  *uint  `json:"problemId,omitempty"`
	Topic      string `gorm:"size:128" json:"topic,omitempty"`
	Difficulty string `gorm:"size:16" json:"difficulty,omitempty"`

	Score            float64   `json:"score"`
	MaxScore         float64   `json:"maxScore"`
	CorrectAnswers   int       `json:"correctAnswers"`
	IncorrectAnswers int       `json:"incorrectAnswers"`
	TotalQuestions   int       `json:"totalQuestions"`
	TimeTakenSeconds int       `json:"timeTakenSeconds"`
	AttemptedAt      time.Time `gorm:"not null;index:idx_attempts_user_time,priority:2" json:"attemptedAt"`
	CreatedAt        time.Time `json:"createdAt"`
}

// BeforeCreate stores timestamps in UTC so range queries compare consistently
// on every driver.
func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.AttemptedAt.IsZero() {
		a.AttemptedAt = time.Now()
	}
	a.AttemptedAt = a.AttemptedAt.UTC()
	return nil
}

// Accuracy is the share of correct answers in percent, 0 for empty attempts.
func (a Attempt) Accuracy() float64 {
	if a.TotalQuestions <= 0 {
		return 0
	}
	return float64(a.CorrectAnswers) / float64(a.TotalQuestions) * 100
}
