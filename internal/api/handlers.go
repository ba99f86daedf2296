package api

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/katakuxiko/answerchain/internal/llm"
	"github.com/katakuxiko/answerchain/internal/model"
	"github.com/katakuxiko/answerchain/internal/service"
	"github.com/katakuxiko/answerchain/internal/telemetry"
)

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	chain    *service.AnswerChain
	timeout  time.Duration
	validate *validator.Validate
}

// NewHandler builds a Handler. timeout bounds each /answer request; zero
// means the request context is used as is.
func NewHandler(chain *service.AnswerChain, timeout time.Duration) *Handler {
	return &Handler{chain: chain, timeout: timeout, validate: validator.New()}
}

// Health is a liveness check.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// ListModels proxies the model list of completers that support it.
func (h *Handler) ListModels(c *fiber.Ctx) error {
	lister, ok := h.chain.Completer().(llm.ModelLister)
	if !ok {
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
			"error": "provider " + h.chain.Provider() + " does not list models",
		})
	}
	models, err := lister.ListModels(c.UserContext())
	if err != nil {
		log := telemetry.L()
		log.Error().Err(err).Msg("list_models_failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models)
}

// Answer generates an answer from the question and context in the body.
func (h *Handler) Answer(c *fiber.Ctx) error {
	var req model.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": `invalid request, expected JSON: {"question":"...","context":"..."}`,
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	answer, completion, err := h.chain.Generate(ctx, req)
	if err != nil {
		// the chain has already logged the failure
		log := telemetry.L()
		log.Debug().
			Err(err).
			Interface("request_id", c.Locals(ReqIDKey)).
			Msg("answer_failed")
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(model.AnswerResponse{
		Answer:   answer,
		Provider: completion.Provider,
		Model:    completion.Model,
	})
}

// statusFor maps chain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case service.IsInvocation(err), service.IsParse(err):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
