package server

import (
	"os"
	"time"

	"bm-admin/types"

	"github.com/gofiber/fiber/v2"
)

var startedAt = time.Now()

// Health reports liveness plus basic process facts for monitors.
func Health(c *fiber.Ctx) error {
	environment := os.Getenv("APP_ENV")
	if environment == "" {
		environment = "development"
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Server is healthy",
		Data: fiber.Map{
			"status":      "ok",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"uptime":      time.Since(startedAt).Round(time.Second).String(),
			"environment": environment,
			"version":     "1.0.0",
		},
	})
}
