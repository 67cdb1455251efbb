package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"prephub/backend/analytics"
	"prephub/backend/events"
	"prephub/backend/metrics"
	"prephub/backend/models"
	"prephub/backend/utils"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

type ChallengeService struct {
	challenges ChallengeStore
	problems   ProblemStore
	publisher  events.Publisher
	logger     *log.Logger
	loc        *time.Location
	now        Clock
}

func NewChallengeService(challenges ChallengeStore, problems ProblemStore, publisher events.Publisher, logger *log.Logger, loc *time.Location, now Clock) *ChallengeService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &ChallengeService{
		challenges: challenges,
		problems:   problems,
		publisher:  publisher,
		logger:     logger,
		loc:        loc,
		now:        now,
	}
}

// ChallengeView is today's challenge as seen by one user.
type ChallengeView struct {
	ID                uint                    `json:"id"`
	Date              string                  `json:"date"`
	Problem           models.ChallengeProblem `json:"problem"`
	Difficulty        string                  `json:"difficulty"`
	BonusPoints       int                     `json:"bonusPoints"`
	UserParticipating bool                    `json:"userParticipating"`
	UserCompleted     bool                    `json:"userCompleted"`
	CompletedAt       *time.Time              `json:"completedAt,omitempty"`
	TotalParticipants int64                   `json:"totalParticipants"`
	TotalCompletions  int64                   `json:"totalCompletions"`
}

// Today returns the challenge for the current calendar date, creating it on
// first access.
func (s *ChallengeService) Today(ctx context.Context) (*models.DailyChallenge, error) {
	return s.ForDate(ctx, analytics.DayOf(s.now(), s.loc))
}

// ForDate returns the challenge for date, creating it if none exists. Any
// number of concurrent callers observe the same single challenge.
func (s *ChallengeService) ForDate(ctx context.Context, date time.Time) (*models.DailyChallenge, error) {
	challenge, err := s.challenges.FindByDate(ctx, date)
	if err == nil {
		return challenge, nil
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return nil, err
	}
	return s.schedule(ctx, date)
}

func (s *ChallengeService) schedule(ctx context.Context, date time.Time) (*models.DailyChallenge, error) {
	problems, err := s.problems.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	problem, ok := analytics.PickProblem(problems, date)
	if !ok {
		return nil, utils.NotFoundErr("no active problems available for the daily challenge")
	}

	snapshot, err := json.Marshal(models.ChallengeProblem{
		ID:         problem.ID,
		Title:      problem.Title,
		Topic:      problem.Topic,
		Difficulty: problem.Difficulty,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode challenge problem: %w", err)
	}

	challenge, created, err := s.challenges.CreateOrGet(ctx, &models.DailyChallenge{
		Date:            date,
		ProblemID:       problem.ID,
		Difficulty:      problem.Difficulty,
		BonusPoints:     analytics.BonusPoints(problem.Difficulty),
		ProblemSnapshot: datatypes.JSON(snapshot),
	})
	if err != nil {
		return nil, err
	}
	if created {
		metrics.ChallengesScheduled.Inc()
		s.logger.Printf("Scheduled daily challenge %s: problem %d (%s)", date.Format(dateLayout), problem.ID, problem.Difficulty)
		s.publish(ctx, events.NewEvent(events.ChallengeScheduled, events.ChallengeScheduledPayload{
			ChallengeID: challenge.ID,
			Date:        date.Format(dateLayout),
			ProblemID:   problem.ID,
			Difficulty:  problem.Difficulty,
		}))
	}
	return challenge, nil
}

// View returns today's challenge with the user's membership flags.
func (s *ChallengeService) View(ctx context.Context, userID uint) (ChallengeView, error) {
	challenge, err := s.Today(ctx)
	if err != nil {
		return ChallengeView{}, err
	}
	return s.view(ctx, challenge, userID)
}

// Participate adds the user to today's participants. Joining twice is a no-op
// and never fails; callers can tell a finished user by view.UserCompleted.
func (s *ChallengeService) Participate(ctx context.Context, userID uint) (ChallengeView, error) {
	challenge, err := s.Today(ctx)
	if err != nil {
		return ChallengeView{}, err
	}
	if _, err := s.challenges.AddParticipant(ctx, challenge.ID, userID, s.now()); err != nil {
		return ChallengeView{}, err
	}
	return s.view(ctx, challenge, userID)
}

// Complete marks today's challenge completed for a participating user. A
// repeated completion is a no-op that keeps the first completion time.
func (s *ChallengeService) Complete(ctx context.Context, userID uint) (ChallengeView, error) {
	challenge, err := s.Today(ctx)
	if err != nil {
		return ChallengeView{}, err
	}

	participant, err := s.challenges.FindParticipant(ctx, challenge.ID, userID)
	if err != nil {
		return ChallengeView{}, err
	}
	if participant == nil {
		return ChallengeView{}, utils.InvalidStateErr("must participate in the daily challenge before completing it")
	}

	marked, err := s.challenges.MarkCompleted(ctx, challenge.ID, userID, s.now())
	if err != nil {
		return ChallengeView{}, err
	}
	if marked {
		metrics.ChallengeCompletions.Inc()
		s.publish(ctx, events.NewEvent(events.ChallengeCompleted, events.ChallengeCompletedPayload{
			ChallengeID: challenge.ID,
			UserID:      userID,
			Date:        challenge.Date.Format(dateLayout),
			BonusPoints: challenge.BonusPoints,
		}))
	}
	return s.view(ctx, challenge, userID)
}

func (s *ChallengeService) view(ctx context.Context, challenge *models.DailyChallenge, userID uint) (ChallengeView, error) {
	view := ChallengeView{
		ID:          challenge.ID,
		Date:        challenge.Date.Format(dateLayout),
		Difficulty:  challenge.Difficulty,
		BonusPoints: challenge.BonusPoints,
	}
	if len(challenge.ProblemSnapshot) > 0 {
		if err := json.Unmarshal(challenge.ProblemSnapshot, &view.Problem); err != nil {
			return ChallengeView{}, fmt.Errorf("failed to decode challenge problem: %w", err)
		}
	} else {
		// rows without a snapshot fall back to the live catalog entry
		problem, err := s.liveProblem(ctx, challenge.ProblemID)
		if err != nil {
			return ChallengeView{}, err
		}
		view.Problem = problem
	}

	participant, err := s.challenges.FindParticipant(ctx, challenge.ID, userID)
	if err != nil {
		return ChallengeView{}, err
	}
	if participant != nil {
		view.UserParticipating = true
		view.UserCompleted = participant.CompletedAt != nil
		view.CompletedAt = participant.CompletedAt
	}

	if view.TotalParticipants, err = s.challenges.CountParticipants(ctx, challenge.ID); err != nil {
		return ChallengeView{}, err
	}
	if view.TotalCompletions, err = s.challenges.CountCompletions(ctx, challenge.ID); err != nil {
		return ChallengeView{}, err
	}
	return view, nil
}

func (s *ChallengeService) liveProblem(ctx context.Context, id uint) (models.ChallengeProblem, error) {
	problem, err := s.problems.FindByID(ctx, id)
	if errors.Is(err, utils.ErrNotFound) {
		return models.ChallengeProblem{ID: id}, nil
	}
	if err != nil {
		return models.ChallengeProblem{}, err
	}
	return models.ChallengeProblem{
		ID:         problem.ID,
		Title:      problem.Title,
		Topic:      problem.Topic,
		Difficulty: problem.Difficulty,
	}, nil
}

func (s *ChallengeService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Printf("Failed to publish %s event: %v", event.Type, err)
	}
}
