package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, float64(50), cfg.SolvedThreshold)
	assert.Equal(t, DailyGoals{MockTests: 2, DSAProblems: 5, StudyMinutes: 60}, cfg.DailyGoals)
	assert.Equal(t, 60*time.Second, cfg.StatsCacheTTL)
	assert.Equal(t, "progress-events", cfg.EventsExchange)
	assert.Equal(t, time.UTC.String(), cfg.Location.String())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SOLVED_THRESHOLD", "60")
	t.Setenv("GOAL_MOCK_TESTS", "not-a-number")
	t.Setenv("STATS_CACHE_TTL", "5m")
	t.Setenv("TOP_PERFORMERS", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, float64(60), cfg.SolvedThreshold)
	assert.Equal(t, 2, cfg.DailyGoals.MockTests)
	assert.Equal(t, 5*time.Minute, cfg.StatsCacheTTL)
	assert.Equal(t, 3, cfg.TopPerformers)
}

func TestLoadConfigRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")

	_, err := LoadConfig()
	assert.Error(t, err)
}
