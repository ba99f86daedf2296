// Command answer runs a single question through the answer chain with the
// provider configured in the environment and prints the answer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/katakuxiko/answerchain/internal/config"
	"github.com/katakuxiko/answerchain/internal/llm"
	"github.com/katakuxiko/answerchain/internal/model"
	"github.com/katakuxiko/answerchain/internal/service"
	"github.com/katakuxiko/answerchain/internal/telemetry"
)

func main() {
	question := flag.String("question", "Who is the CEO of Neo4j?", "question to answer")
	contextText := flag.String("context", "Neo4j CEO: Emil Eifrem", "context the answer must come from")
	provider := flag.String("provider", "", "override LLM_PROVIDER")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *provider != "" {
		cfg.Provider = *provider
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}
	tlog := telemetry.Init(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	completer, err := llm.NewCompleter(ctx, cfg)
	if err != nil {
		tlog.Fatal().Err(err).Str("provider", cfg.Provider).Msg("init completer")
	}
	chain, err := service.NewAnswerChain(completer, service.WithLogger(tlog))
	if err != nil {
		tlog.Fatal().Err(err).Msg("init answer chain")
	}

	answer, err := chain.GenerateAnswer(ctx, model.AnswerRequest{
		Question: *question,
		Context:  *contextText,
	})
	if err != nil {
		tlog.Fatal().Err(err).Msg("generate answer")
	}
	fmt.Println(answer)
}
