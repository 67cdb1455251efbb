package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prephub/backend/cache"
	"prephub/backend/config"
	"prephub/backend/events"
	"prephub/backend/middleware"
	"prephub/backend/routes"
	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Optional infrastructure
	statsCache := cache.New(cfg, logger)
	publisher, err := events.NewPublisher(cfg.RabbitMQURI, cfg.EventsExchange, logger)
	if err != nil {
		logger.Printf("Warning: %v, falling back to logged events", err)
		publisher, _ = events.NewPublisher("", cfg.EventsExchange, logger)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, routes.Infra{
		Cache:     statsCache,
		Publisher: publisher,
		Logger:    logger,
	})

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-shutdownChan
	logger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Printf("Error shutting down HTTP server: %v", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Printf("Error closing event publisher: %v", err)
	}
	if err := statsCache.Close(); err != nil {
		logger.Printf("Error closing stats cache: %v", err)
	}
}
