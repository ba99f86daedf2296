package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/katakuxiko/answerchain/internal/api"
	"github.com/katakuxiko/answerchain/internal/config"
	"github.com/katakuxiko/answerchain/internal/llm"
	"github.com/katakuxiko/answerchain/internal/service"
	"github.com/katakuxiko/answerchain/internal/telemetry"
)

func main() {
	// config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	tlog := telemetry.Init(cfg.Log)

	// model client
	completer, err := llm.NewCompleter(context.Background(), cfg)
	if err != nil {
		tlog.Fatal().Err(err).Str("provider", cfg.Provider).Msg("init completer")
	}

	// chain
	chain, err := service.NewAnswerChain(completer, service.WithLogger(tlog))
	if err != nil {
		tlog.Fatal().Err(err).Msg("init answer chain")
	}

	// api
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api.RegisterRoutes(app, chain, cfg.RequestTimeout)

	tlog.Info().
		Str("addr", cfg.ServerAddr).
		Str("provider", cfg.Provider).
		Str("model", cfg.ChatModelFor(cfg.Provider)).
		Msg("server started")
	if err := app.Listen(cfg.ServerAddr); err != nil {
		tlog.Fatal().Err(err).Msg("listen")
	}
}
