package services

import (
	"context"
	"time"

	"prephub/backend/analytics"
	"prephub/backend/cache"
	"prephub/backend/config"
	"prephub/backend/models"
	"prephub/backend/repository"
	"prephub/backend/utils"
)

// StatsService serves the dashboard reads: stats, calendar and history.
type StatsService struct {
	attempts AttemptStore
	cache    cache.StatsCache
	opts     analytics.StatsOptions
	goals    analytics.Goals
	now      Clock
}

func NewStatsService(attempts AttemptStore, statsCache cache.StatsCache, cfg *config.Config, now Clock) *StatsService {
	if statsCache == nil {
		statsCache = cache.NoopCache{}
	}
	if now == nil {
		now = time.Now
	}
	return &StatsService{
		attempts: attempts,
		cache:    statsCache,
		opts: analytics.StatsOptions{
			SolvedThreshold: cfg.SolvedThreshold,
			Location:        cfg.Location,
		},
		goals: analytics.Goals{
			MockTests:    cfg.DailyGoals.MockTests,
			DSAProblems:  cfg.DailyGoals.DSAProblems,
			StudyMinutes: cfg.DailyGoals.StudyMinutes,
		},
		now: now,
	}
}

// Snapshot returns the user's stats, recomputed from the attempt history unless
// a recent copy is cached. Users without attempts get a zeroed snapshot.
func (s *StatsService) Snapshot(ctx context.Context, userID uint) (models.UserStatsSnapshot, error) {
	if cached, ok := s.cache.Get(ctx, userID); ok {
		return *cached, nil
	}
	snapshot, err := s.Fresh(ctx, userID)
	if err != nil {
		return snapshot, err
	}
	s.cache.Set(ctx, userID, snapshot)
	return snapshot, nil
}

// Fresh always recomputes, bypassing the cache.
func (s *StatsService) Fresh(ctx context.Context, userID uint) (models.UserStatsSnapshot, error) {
	attempts, err := s.attempts.FindByUser(ctx, userID)
	if err != nil {
		return models.UserStatsSnapshot{}, err
	}
	return analytics.Aggregate(attempts, s.now(), s.opts), nil
}

// Invalidate drops the cached snapshot after the user's history changed.
func (s *StatsService) Invalidate(ctx context.Context, userID uint) {
	s.cache.Invalidate(ctx, userID)
}

func (s *StatsService) Calendar(ctx context.Context, userID uint, year, month int) (models.Calendar, error) {
	year, month = analytics.ClampMonth(year, month)
	loc := s.opts.Location
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	attempts, err := s.attempts.FindByUserAndDateRange(ctx, userID, start, end)
	if err != nil {
		return models.Calendar{}, err
	}
	return analytics.BuildCalendar(attempts, year, month, s.now(), s.goals, s.opts), nil
}

const (
	defaultHistoryPageSize = 10
	maxHistoryPageSize     = 100
)

type HistoryParams struct {
	Page     int
	PageSize int
	Filter   string
	Sort     string
}

type HistoryPage struct {
	Tests    []models.AttemptSummary `json:"tests"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"pageSize"`
}

func (s *StatsService) History(ctx context.Context, userID uint, p HistoryParams) (HistoryPage, error) {
	filter := repository.HistoryFilter(p.Filter)
	switch filter {
	case "":
		filter = repository.HistoryAll
	case repository.HistoryAll, repository.HistoryMockTest, repository.HistoryDSA:
	default:
		return HistoryPage{}, utils.ValidationErr("unknown history filter %q", p.Filter)
	}

	sort := repository.HistorySort(p.Sort)
	switch sort {
	case "":
		sort = repository.SortRecent
	case repository.SortRecent, repository.SortOldest, repository.SortScore, repository.SortAccuracy:
	default:
		return HistoryPage{}, utils.ValidationErr("unknown history sort %q", p.Sort)
	}

	if p.PageSize <= 0 {
		p.PageSize = defaultHistoryPageSize
	}
	page, pageSize := analytics.ClampPage(p.Page, p.PageSize, maxHistoryPageSize)

	attempts, total, err := s.attempts.History(ctx, userID, repository.HistoryQuery{
		Filter: filter,
		Sort:   sort,
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		return HistoryPage{}, err
	}

	tests := make([]models.AttemptSummary, 0, len(attempts))
	for _, a := range attempts {
		tests = append(tests, models.NewAttemptSummary(a))
	}
	return HistoryPage{Tests: tests, Total: total, Page: page, PageSize: pageSize}, nil
}
