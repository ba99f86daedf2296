package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/katakuxiko/answerchain/internal/service"
)

// RegisterRoutes mounts the middleware and handlers on app.
func RegisterRoutes(app *fiber.App, chain *service.AnswerChain, timeout time.Duration) {
	h := NewHandler(chain, timeout)

	app.Use(RequestID())
	app.Use(Recover())
	app.Use(RequestLog())

	app.Get("/health", h.Health)
	app.Get("/models", h.ListModels)
	app.Post("/answer", h.Answer)
}
