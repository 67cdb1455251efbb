package services

import (
	"context"
	"log"
	"time"

	"prephub/backend/events"
	"prephub/backend/metrics"
	"prephub/backend/models"
	"prephub/backend/utils"
)

type AttemptService struct {
	attempts     AttemptStore
	stats        *StatsService
	achievements *AchievementService
	publisher    events.Publisher
	logger       *log.Logger
}

func NewAttemptService(attempts AttemptStore, stats *StatsService, achievements *AchievementService, publisher events.Publisher, logger *log.Logger) *AttemptService {
	return &AttemptService{
		attempts:     attempts,
		stats:        stats,
		achievements: achievements,
		publisher:    publisher,
		logger:       logger,
	}
}

// RecordResult is what a successful append produced.
type RecordResult struct {
	Attempt         models.Attempt             `json:"attempt"`
	NewAchievements []models.EarnedAchievement `json:"newAchievements"`
}

// ValidateAttempt checks structural correctness only.
func ValidateAttempt(a *models.Attempt) map[string]string {
	errs := map[string]string{}
	if !a.TestType.Valid() {
		errs["testType"] = "must be one of mocktest, dsa"
	}
	if a.TotalQuestions < 0 {
		errs["totalQuestions"] = "must not be negative"
	}
	if a.CorrectAnswers < 0 {
		errs["correctAnswers"] = "must not be negative"
	}
	if a.IncorrectAnswers < 0 {
		errs["incorrectAnswers"] = "must not be negative"
	}
	if a.CorrectAnswers+a.IncorrectAnswers > a.TotalQuestions {
		errs["correctAnswers"] = "correct plus incorrect answers exceed total questions"
	}
	if a.MaxScore < 0 {
		errs["maxScore"] = "must not be negative"
	}
	if a.Score < 0 || a.Score > a.MaxScore {
		errs["score"] = "must be between 0 and maxScore"
	}
	if a.TimeTakenSeconds < 0 {
		errs["timeTakenSeconds"] = "must not be negative"
	}
	return errs
}

// Record appends the attempt for userID, then refreshes everything derived
// from the history: the cached stats and the user's badges.
func (s *AttemptService) Record(ctx context.Context, userID uint, attempt models.Attempt) (RecordResult, error) {
	attempt.ID = 0
	attempt.UserID = userID
	if errs := ValidateAttempt(&attempt); len(errs) > 0 {
		return RecordResult{}, &utils.AppError{Kind: utils.KindValidation, Message: "invalid attempt", Err: utils.FieldErrors(errs)}
	}
	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = time.Now()
	}

	if err := s.attempts.Create(ctx, &attempt); err != nil {
		return RecordResult{}, err
	}
	metrics.AttemptsRecorded.WithLabelValues(string(attempt.TestType)).Inc()
	s.stats.Invalidate(ctx, userID)

	if s.publisher != nil {
		event := events.NewEvent(events.AttemptRecorded, events.AttemptRecordedPayload{
			UserID:    userID,
			AttemptID: attempt.ID,
			TestType:  string(attempt.TestType),
		})
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Printf("Failed to publish %s event: %v", event.Type, err)
		}
	}

	newly, _, _, err := s.achievements.Evaluate(ctx, userID)
	if err != nil {
		// The attempt is stored; badges are evaluated again on the next read.
		s.logger.Printf("Failed to evaluate achievements for user %d: %v", userID, err)
		newly = []models.EarnedAchievement{}
	}
	return RecordResult{Attempt: attempt, NewAchievements: newly}, nil
}
