package services

import (
	"context"
	"time"

	"prephub/backend/analytics"
	"prephub/backend/config"
	"prephub/backend/models"
)

type LeaderboardService struct {
	scores      ScoreStore
	loc         *time.Location
	maxPageSize int
	topN        int
	now         Clock
}

func NewLeaderboardService(scores ScoreStore, cfg *config.Config, now Clock) *LeaderboardService {
	if now == nil {
		now = time.Now
	}
	return &LeaderboardService{
		scores:      scores,
		loc:         cfg.Location,
		maxPageSize: cfg.LeaderboardMaxPageSize,
		topN:        cfg.TopPerformers,
		now:         now,
	}
}

// Leaderboard ranks every user with at least one attempt inside scope and
// returns the requested page. Out-of-range paging is clamped.
func (s *LeaderboardService) Leaderboard(ctx context.Context, scope analytics.Scope, page, pageSize int) (models.LeaderboardPage, error) {
	page, pageSize = analytics.ClampPage(page, pageSize, s.maxPageSize)
	entries, err := s.rank(ctx, scope)
	if err != nil {
		return models.LeaderboardPage{}, err
	}
	return analytics.Paginate(entries, page, pageSize), nil
}

// TopPerformers is the head of the all-time ranking.
func (s *LeaderboardService) TopPerformers(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries, err := s.rank(ctx, analytics.Scope{Timeframe: analytics.TimeframeAll})
	if err != nil {
		return nil, err
	}
	if s.topN > 0 && len(entries) > s.topN {
		entries = entries[:s.topN]
	}
	return entries, nil
}

func (s *LeaderboardService) Filters(ctx context.Context) (models.LeaderboardFilters, error) {
	return s.scores.DistinctFilters(ctx)
}

func (s *LeaderboardService) rank(ctx context.Context, scope analytics.Scope) ([]models.LeaderboardEntry, error) {
	scores, err := s.scores.UserScores(ctx, scope, s.now(), s.loc)
	if err != nil {
		return nil, err
	}
	return analytics.Rank(scores), nil
}
