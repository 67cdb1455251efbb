package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AttemptsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prephub_attempts_recorded_total",
			Help: "Total number of attempts appended to the attempt store",
		},
		[]string{"test_type"},
	)

	AchievementsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prephub_achievements_awarded_total",
			Help: "Total number of badges awarded",
		},
		[]string{"badge"},
	)

	ChallengesScheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prephub_daily_challenges_scheduled_total",
			Help: "Total number of daily challenges created",
		},
	)

	ChallengeCompletions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prephub_daily_challenge_completions_total",
			Help: "Total number of daily challenge completions",
		},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prephub_http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// ObserveRequest records one served request. route is the matched pattern, not the raw path.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler exposes the default registry for scraping.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
