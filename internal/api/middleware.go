package api

import (
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/katakuxiko/answerchain/internal/telemetry"
)

const ReqIDKey = "reqID"

// RequestID propagates X-Request-ID, generating one when absent.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Set("X-Request-ID", rid)
		c.Locals(ReqIDKey, rid)
		return c.Next()
	}
}

// RequestLog writes one line per request after it has been handled.
func RequestLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log := telemetry.L()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Interface("request_id", c.Locals(ReqIDKey)).
			Msg("http_request")
		return err
	}
}

// Recover turns a panic in a handler into a 500 response.
func Recover() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log := telemetry.L()
				log.Error().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("panic_recovered")
				err = c.Status(fiber.StatusInternalServerError).SendString("internal error")
			}
		}()
		return c.Next()
	}
}
