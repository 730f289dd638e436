package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/nextbus/pkg/nextbus"
)

func sendFeedError(c *fiber.Ctx, err error) error {
	var feedError *nextbus.Error

	if errors.As(err, &feedError) {
		status := fiber.StatusBadRequest
		if feedError.Retryable() {
			status = fiber.StatusServiceUnavailable
		}

		c.Status(status)
		return c.JSON(fiber.Map{
			"error":       feedError.Message,
			"shouldRetry": feedError.ShouldRetry,
		})
	}

	c.Status(fiber.StatusBadGateway)
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

func sendReduced(c *fiber.Ctx, value interface{}, groups ...string) error {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, value)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(reduced)
}
