package services

import (
	"bytes"
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"prephub/backend/config"
	"prephub/backend/events"
	"prephub/backend/models"
	"prephub/backend/repository"
	"prephub/backend/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var ctx = context.Background()

// fixed "now" for every service test: 2024-03-15 12:00 UTC
var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count(eventType events.EventType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

type fixture struct {
	db           *gorm.DB
	cfg          *config.Config
	publisher    *recordingPublisher
	logs         *bytes.Buffer
	stats        *StatsService
	achievements *AchievementService
	attempts     *AttemptService
	leaderboard  *LeaderboardService
	challenges   *ChallengeService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Default()
	db, err := utils.InitDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	f := &fixture{db: db, cfg: cfg, publisher: &recordingPublisher{}, logs: &bytes.Buffer{}}
	logger := log.New(f.logs, "", 0)

	attemptRepo := repository.NewAttemptRepository(db)
	f.stats = NewStatsService(attemptRepo, nil, cfg, fixedClock)
	f.achievements = NewAchievementService(f.stats, repository.NewAchievementRepository(db), f.publisher, logger, fixedClock)
	f.attempts = NewAttemptService(attemptRepo, f.stats, f.achievements, f.publisher, logger)
	f.leaderboard = NewLeaderboardService(attemptRepo, cfg, fixedClock)
	f.challenges = NewChallengeService(
		repository.NewChallengeRepository(db),
		repository.NewProblemRepository(db),
		f.publisher, logger, cfg.Location, fixedClock,
	)
	return f
}

func (f *fixture) user(t *testing.T, name string) models.User {
	t.Helper()
	u := models.User{Username: name, Email: name + "@example.com", PasswordHash: "x"}
	require.NoError(t, f.db.Create(&u).Error)
	return u
}

func (f *fixture) problem(t *testing.T, title, difficulty string) models.Problem {
	t.Helper()
	p := models.Problem{Title: title, Topic: "arrays", Difficulty: difficulty, IsActive: true}
	require.NoError(t, f.db.Create(&p).Error)
	return p
}

func mockAttempt(score float64, correct int, at time.Time) models.Attempt {
	return models.Attempt{
		TestType:         models.TestTypeMockTest,
		Exam:             "JEE",
		Subject:          "physics",
		Score:            score,
		MaxScore:         100,
		CorrectAnswers:   correct,
		IncorrectAnswers: 10 - correct,
		TotalQuestions:   10,
		TimeTakenSeconds: 1200,
		AttemptedAt:      at,
	}
}
