package middleware

import (
	"bm-admin/logger"
	"bm-admin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogger tags every request with an id and pushes a sanitized
// request/response record onto the async logger after the handler runs.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Locals("requestid", requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		entry := utils.CreateSanitizedLogEntry(c)
		entry.RequestID = requestID
		asyncLogger.Log(entry)

		return err
	}
}
