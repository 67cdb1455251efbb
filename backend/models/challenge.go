package models

import (
	"time"

	"gorm.io/datatypes"
)

// DailyChallenge is unique per calendar date. Date holds the local calendar day
// encoded as midnight UTC.
type DailyChallenge struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"not null;uniqueIndex" json:"date"`
	ProblemID   uint      `gorm:"not null" json:"problemId"`
	Difficulty  string    `gorm:"size:16;not null" json:"difficulty"`
	BonusPoints int       `gorm:"not null" json:"bonusPoints"`
	// Problem as it looked when the challenge was scheduled.
	ProblemSnapshot datatypes.JSON `json:"problem"`
	CreatedAt       time.Time      `json:"createdAt"`

	Participants []DailyChallengeParticipant `gorm:"foreignKey:ChallengeID" json:"-"`
}

// DailyChallengeParticipant holds both set memberships: a row means the user
// participates, a non-nil CompletedAt means the user completed.
type DailyChallengeParticipant struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ChallengeID    uint       `gorm:"not null;uniqueIndex:idx_challenge_user" json:"challengeId"`
	UserID         uint       `gorm:"not null;uniqueIndex:idx_challenge_user" json:"userId"`
	ParticipatedAt time.Time  `gorm:"not null" json:"participatedAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

// ChallengeProblem is the frozen problem view stored in ProblemSnapshot.
type ChallengeProblem struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}
