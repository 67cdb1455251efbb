package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBDSN      string
	JWTSecret  string
	ServerPort string

	// Location used to turn attempt timestamps into calendar days.
	Location *time.Location

	SolvedThreshold float64
	DailyGoals      DailyGoals

	StatsCacheTTL time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RabbitMQURI    string
	EventsExchange string

	LeaderboardMaxPageSize int
	TopPerformers          int
}

// DailyGoals are the per-day targets the calendar compares each day against.
type DailyGoals struct {
	MockTests    int `json:"mockTests"`
	DSAProblems  int `json:"dsaProblems"`
	StudyMinutes int `json:"studyMinutes"`
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	tzName := getEnv("TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tzName, err)
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "prephub"),
		DBDSN:      getEnv("DB_DSN", "prephub.db"),
		JWTSecret:  getEnv("JWT_SECRET", "secret"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Location:   loc,

		SolvedThreshold: getEnvFloat("SOLVED_THRESHOLD", 50),
		DailyGoals: DailyGoals{
			MockTests:    getEnvInt("GOAL_MOCK_TESTS", 2),
			DSAProblems:  getEnvInt("GOAL_DSA_PROBLEMS", 5),
			StudyMinutes: getEnvInt("GOAL_STUDY_MINUTES", 60),
		},

		StatsCacheTTL: getEnvDuration("STATS_CACHE_TTL", 60*time.Second),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		RabbitMQURI:    getEnv("RABBITMQ_URI", ""),
		EventsExchange: getEnv("EVENTS_EXCHANGE", "progress-events"),

		LeaderboardMaxPageSize: getEnvInt("LEADERBOARD_MAX_PAGE_SIZE", 100),
		TopPerformers:          getEnvInt("TOP_PERFORMERS", 10),
	}, nil
}

// Default returns the configuration used when no environment is present.
func Default() *Config {
	return &Config{
		DBDriver:               "sqlite",
		DBDSN:                  "file::memory:",
		JWTSecret:              "secret",
		ServerPort:             "8080",
		Location:               time.UTC,
		SolvedThreshold:        50,
		DailyGoals:             DailyGoals{MockTests: 2, DSAProblems: 5, StudyMinutes: 60},
		StatsCacheTTL:          60 * time.Second,
		EventsExchange:         "progress-events",
		LeaderboardMaxPageSize: 100,
		TopPerformers:          10,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %v", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %s", key, raw, defaultValue)
		return defaultValue
	}
	return value
}
