package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger logs one line per request, tagged with the agency/route/stop path parameters
func NewLogger() fiber.Handler {
	return newRequestLogger(&log.Logger)
}

func newRequestLogger(logger *zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()
		err := c.Next()

		code := c.Response().StatusCode()

		var event *zerolog.Event
		switch {
		case code >= fiber.StatusInternalServerError:
			event = logger.Error()
		case code >= fiber.StatusBadRequest:
			event = logger.Warn()
		default:
			event = logger.Info()
		}

		params := zerolog.Dict()
		for key, value := range c.AllParams() {
			params = params.Str(key, value)
		}

		event.
			Int("status", code).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Dict("params", params).
			Int("bytes", len(c.Response().Body())).
			Str("ip", c.IP()).
			Dur("latency", time.Since(startTime)).
			Str("user-agent", c.Get(fiber.HeaderUserAgent))

		if err != nil {
			event.Err(err).Msg("HTTP Request failed")
		} else {
			event.Msg("HTTP Request")
		}

		return err
	}
}
