package middleware

import (
	"log"
	"time"

	"prephub/backend/metrics"
	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)

		err := c.Next()

		// let fiber's error handler settle the status before we read it
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		elapsed := time.Since(start)
		metrics.ObserveRequest(c.Method(), c.Route().Path, status, elapsed)

		logger.Printf(
			"%s %s %s %s%d\033[0m %v",
			requestID,
			c.IP(),
			c.Method()+" "+c.Path(),
			utils.StatusColor(status),
			status,
			elapsed,
		)

		return nil
	}
}
