package services

import (
	"context"
	"time"

	"prephub/backend/analytics"
	"prephub/backend/models"
	"prephub/backend/repository"
)

// The services depend on these narrow views of the repositories.

type AttemptStore interface {
	Create(ctx context.Context, attempt *models.Attempt) error
	FindByUser(ctx context.Context, userID uint) ([]models.Attempt, error)
	FindByUserAndDateRange(ctx context.Context, userID uint, start, end time.Time) ([]models.Attempt, error)
	History(ctx context.Context, userID uint, q repository.HistoryQuery) ([]models.Attempt, int64, error)
}

type ScoreStore interface {
	UserScores(ctx context.Context, scope analytics.Scope, now time.Time, loc *time.Location) ([]models.UserScore, error)
	DistinctFilters(ctx context.Context) (models.LeaderboardFilters, error)
}

type AchievementStore interface {
	FindByUser(ctx context.Context, userID uint) ([]models.EarnedAchievement, error)
	Award(ctx context.Context, userID uint, badge string, at time.Time) (*models.EarnedAchievement, bool, error)
}

type ProblemStore interface {
	FindActive(ctx context.Context) ([]models.Problem, error)
	FindByID(ctx context.Context, id uint) (*models.Problem, error)
}

type ChallengeStore interface {
	FindByDate(ctx context.Context, date time.Time) (*models.DailyChallenge, error)
	CreateOrGet(ctx context.Context, challenge *models.DailyChallenge) (*models.DailyChallenge, bool, error)
	FindParticipant(ctx context.Context, challengeID, userID uint) (*models.DailyChallengeParticipant, error)
	AddParticipant(ctx context.Context, challengeID, userID uint, at time.Time) (bool, error)
	MarkCompleted(ctx context.Context, challengeID, userID uint, at time.Time) (bool, error)
	CountParticipants(ctx context.Context, challengeID uint) (int64, error)
	CountCompletions(ctx context.Context, challengeID uint) (int64, error)
}

// Clock returns the current time; tests pin it.
type Clock func() time.Time
