package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/katakuxiko/answerchain/internal/telemetry"
)

type Config struct {
	ServerAddr     string        `env:"SERVER_ADDR" envDefault:":8080" validate:"required"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`

	Provider    string  `env:"LLM_PROVIDER" envDefault:"lmstudio" validate:"oneof=lmstudio openai anthropic gemini dryrun"`
	ChatModel   string  `env:"LLM_MODEL"`
	Temperature float32 `env:"LLM_TEMPERATURE" envDefault:"0.2" validate:"gte=0,lte=2"`
	MaxTokens   int     `env:"LLM_MAX_TOKENS" envDefault:"1024" validate:"gte=0"`

	LMBaseURL string `env:"LMSTUDIO_BASE_URL" envDefault:"http://localhost:1234/v1" validate:"omitempty,url"`
	LMAPIKey  string `env:"LMSTUDIO_API_KEY"`

	OpenAIKey        string `env:"OPENAI_API_KEY" validate:"required_if=Provider openai"`
	OpenAIBaseURL    string `env:"OPENAI_BASE_URL" validate:"omitempty,url"`
	AnthropicKey     string `env:"ANTHROPIC_API_KEY" validate:"required_if=Provider anthropic"`
	AnthropicBaseURL string `env:"ANTHROPIC_BASE_URL" validate:"omitempty,url"`
	GeminiKey        string `env:"GEMINI_API_KEY" validate:"required_if=Provider gemini"`
	GeminiBaseURL    string `env:"GEMINI_BASE_URL" validate:"omitempty,url"`

	Log telemetry.Config
}

// default chat model per provider, used when LLM_MODEL is unset
var defaultModels = map[string]string{
	"lmstudio":  "google/gemma-3n-e4b",
	"openai":    "gpt-4o-mini",
	"anthropic": "claude-sonnet-4-5-20250929",
	"gemini":    "gemini-2.0-flash",
	"dryrun":    "dryrun",
}

var validate = validator.New()

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// ChatModelFor returns LLM_MODEL, or the default model of provider.
func (c *Config) ChatModelFor(provider string) string {
	if c.ChatModel != "" {
		return c.ChatModel
	}
	return defaultModels[provider]
}
