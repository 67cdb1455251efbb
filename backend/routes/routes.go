package routes

import (
	"log"

	"prephub/backend/cache"
	"prephub/backend/config"
	"prephub/backend/controllers"
	_ "prephub/backend/docs"
	"prephub/backend/events"
	"prephub/backend/metrics"
	"prephub/backend/middleware"
	"prephub/backend/repository"
	"prephub/backend/services"
	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"gorm.io/gorm"
)

// Infra holds the optional collaborators; zero values fall back to a no-op
// cache, a logging publisher, the default logger and the wall clock.
type Infra struct {
	Cache     cache.StatsCache
	Publisher events.Publisher
	Logger    *log.Logger
	Clock     services.Clock
}

func (in *Infra) defaults() {
	if in.Logger == nil {
		in.Logger = utils.InitLogger()
	}
	if in.Cache == nil {
		in.Cache = cache.NoopCache{}
	}
	if in.Publisher == nil {
		in.Publisher, _ = events.NewPublisher("", "", in.Logger)
	}
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, infra Infra) {
	infra.defaults()

	// a panicking handler answers 500 instead of taking the server down
	app.Use(recover.New())

	users := repository.NewUserRepository(db)
	attempts := repository.NewAttemptRepository(db)
	problems := repository.NewProblemRepository(db)
	earned := repository.NewAchievementRepository(db)
	challenges := repository.NewChallengeRepository(db)

	statsService := services.NewStatsService(attempts, infra.Cache, cfg, infra.Clock)
	achievementService := services.NewAchievementService(statsService, earned, infra.Publisher, infra.Logger, infra.Clock)
	attemptService := services.NewAttemptService(attempts, statsService, achievementService, infra.Publisher, infra.Logger)
	leaderboardService := services.NewLeaderboardService(attempts, cfg, infra.Clock)
	challengeService := services.NewChallengeService(challenges, problems, infra.Publisher, infra.Logger, cfg.Location, infra.Clock)

	// Ops routes
	healthController := controllers.NewHealthController(db)
	app.Get("/healthz", healthController.Health)
	app.Get("/metrics", metrics.Handler())
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Auth routes
	authController := controllers.NewAuthController(users, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(users, statsService)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Progress routes
	progressController := controllers.NewProgressController(statsService, cfg)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Get("/api/progress/overview", authMiddleware, progressController.GetProgressOverview)

	// Overview routes
	overviewController := controllers.NewOverviewController(problems)
	app.Get("/api/overview/problems", authMiddleware, overviewController.SearchProblems)

	// Attempt routes
	attemptController := controllers.NewAttemptController(attemptService)
	app.Post("/api/attempts", authMiddleware, attemptController.RecordAttempt)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(statsService, achievementService, cfg)
	dashboard := app.Group("/api/dashboard", authMiddleware)
	dashboard.Get("/stats", dashboardController.GetStats)
	dashboard.Get("/calendar", dashboardController.GetCalendar)
	dashboard.Get("/history", dashboardController.GetHistory)
	dashboard.Get("/achievements", dashboardController.GetAchievements)

	// Leaderboard routes
	leaderboardController := controllers.NewLeaderboardController(leaderboardService)
	leaderboard := app.Group("/api/leaderboard", authMiddleware)
	leaderboard.Get("/", leaderboardController.GetLeaderboard)
	leaderboard.Get("/filters", leaderboardController.GetFilters)
	leaderboard.Get("/top-performers", leaderboardController.GetTopPerformers)

	// Daily challenge routes
	challengeController := controllers.NewChallengeController(challengeService)
	challenge := app.Group("/api/daily-challenge", authMiddleware)
	challenge.Get("/", challengeController.GetDailyChallenge)
	challenge.Post("/participate", challengeController.Participate)
	challenge.Post("/complete", challengeController.Complete)
}
