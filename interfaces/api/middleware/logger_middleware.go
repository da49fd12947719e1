package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"sprintdeck/pkg/logger"
	"sprintdeck/pkg/utils"
)

// LoggerMiddleware logs every request with latency and status.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		logger.InfoContext(c.UserContext(), "Request started",
			"method", c.Method(),
			"path", c.Path(),
			"ip", c.IP(),
			"user_agent", c.Get("User-Agent"),
		)

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		logFunc := logger.InfoContext
		if status >= 500 {
			logFunc = logger.ErrorContext
		} else if status >= 400 {
			logFunc = logger.WarnContext
		}

		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", latency.String(),
			"bytes", len(c.Response().Body()),
		}
		// Protected and Optional both leave the verified caller in locals
		if user, err := utils.GetUserFromContext(c); err == nil {
			fields = append(fields, "user_id", user.ID)
		}

		logFunc(c.UserContext(), "Request completed", fields...)

		return err
	}
}
