package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	AttemptRecorded     EventType = "attempt.recorded"
	AchievementUnlocked EventType = "achievement.unlocked"
	ChallengeScheduled  EventType = "challenge.scheduled"
	ChallengeCompleted  EventType = "challenge.completed"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

func NewEvent(eventType EventType, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

type AttemptRecordedPayload struct {
	UserID    uint   `json:"userId"`
	AttemptID uint   `json:"attemptId"`
	TestType  string `json:"testType"`
}

type AchievementUnlockedPayload struct {
	UserID    uint      `json:"userId"`
	BadgeName string    `json:"badgeName"`
	Name      string    `json:"name"`
	Rarity    string    `json:"rarity"`
	EarnedAt  time.Time `json:"earnedAt"`
}

type ChallengeScheduledPayload struct {
	ChallengeID uint   `json:"challengeId"`
	Date        string `json:"date"`
	ProblemID   uint   `json:"problemId"`
	Difficulty  string `json:"difficulty"`
}

type ChallengeCompletedPayload struct {
	ChallengeID uint   `json:"challengeId"`
	UserID      uint   `json:"userId"`
	Date        string `json:"date"`
	BonusPoints int    `json:"bonusPoints"`
}
