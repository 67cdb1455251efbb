package services

import (
	"context"
	"log"
	"time"

	"prephub/backend/analytics"
	"prephub/backend/events"
	"prephub/backend/metrics"
	"prephub/backend/models"
)

type AchievementService struct {
	stats     *StatsService
	store     AchievementStore
	publisher events.Publisher
	logger    *log.Logger
	now       Clock
}

func NewAchievementService(stats *StatsService, store AchievementStore, publisher events.Publisher, logger *log.Logger, now Clock) *AchievementService {
	if now == nil {
		now = time.Now
	}
	return &AchievementService{stats: stats, store: store, publisher: publisher, logger: logger, now: now}
}

// AchievementProgress is a catalog entry annotated for one user.
type AchievementProgress struct {
	analytics.Achievement
	Earned     bool       `json:"earned"`
	EarnedDate *time.Time `json:"earnedDate,omitempty"`
	Progress   int        `json:"progress"`
}

type AchievementsView struct {
	Earned      []models.EarnedAchievement `json:"earned"`
	NewlyEarned []models.EarnedAchievement `json:"newlyEarned"`
	Catalog     []AchievementProgress      `json:"catalog"`
}

// Evaluate awards every badge the user's current stats satisfy and has not
// earned yet. It returns the newly created rows and the complete earned set.
// Concurrent evaluations for one user award each badge at most once.
func (s *AchievementService) Evaluate(ctx context.Context, userID uint) (newly, earned []models.EarnedAchievement, snapshot models.UserStatsSnapshot, err error) {
	snapshot, err = s.stats.Fresh(ctx, userID)
	if err != nil {
		return nil, nil, snapshot, err
	}
	earned, err = s.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, nil, snapshot, err
	}

	newly = []models.EarnedAchievement{}
	at := s.now().UTC()
	for _, a := range analytics.NewlyQualified(snapshot, earned) {
		row, created, err := s.store.Award(ctx, userID, a.ID, at)
		if err != nil {
			return nil, nil, snapshot, err
		}
		if !created {
			// lost a concurrent award of the same badge
			continue
		}
		newly = append(newly, *row)
		earned = append(earned, *row)
		metrics.AchievementsAwarded.WithLabelValues(a.ID).Inc()
		s.publish(ctx, events.NewEvent(events.AchievementUnlocked, events.AchievementUnlockedPayload{
			UserID:    userID,
			BadgeName: a.ID,
			Name:      a.Name,
			Rarity:    a.Rarity,
			EarnedAt:  row.EarnedDate,
		}))
	}
	return newly, earned, snapshot, nil
}

// Overview evaluates and then lays the catalog out with per-badge progress.
func (s *AchievementService) Overview(ctx context.Context, userID uint) (AchievementsView, error) {
	newly, earned, snapshot, err := s.Evaluate(ctx, userID)
	if err != nil {
		return AchievementsView{}, err
	}

	byBadge := make(map[string]models.EarnedAchievement, len(earned))
	for _, e := range earned {
		byBadge[e.BadgeName] = e
	}

	catalog := analytics.Catalog()
	view := AchievementsView{
		Earned:      earned,
		NewlyEarned: newly,
		Catalog:     make([]AchievementProgress, 0, len(catalog)),
	}
	for _, a := range catalog {
		p := AchievementProgress{Achievement: a, Progress: a.Criterion.Progress(snapshot)}
		if e, ok := byBadge[a.ID]; ok {
			date := e.EarnedDate
			p.Earned = true
			p.EarnedDate = &date
			p.Progress = 100
		}
		view.Catalog = append(view.Catalog, p)
	}
	return view, nil
}

func (s *AchievementService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Printf("Failed to publish %s event: %v", event.Type, err)
	}
}
