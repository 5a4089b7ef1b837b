// Package config loads bot configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full bot configuration. A .env file in the working
// directory is loaded first; real environment variables win.
type Config struct {
	TelegramToken string `env:"TG_TOKEN,required,notEmpty"`

	// Provider selects the generation backend: yandex, openai or
	// custom (an OpenAI-compatible endpoint).
	Provider string `env:"PROVIDER" envDefault:"yandex"`

	YandexAPIKey   string `env:"YANDEX_API_KEY"`
	YandexModelURI string `env:"YANDEX_MODEL_URI"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`

	// RedisAddr switches the prompt store to Redis when set; empty
	// keeps the file-backed store at PromptPath.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	PromptPath string `env:"PROMPT_PATH" envDefault:"prompt.txt"`
	ScenePath  string `env:"SCENE_PATH" envDefault:"templates/start_scene.txt"`

	GenerateTimeoutSec int `env:"GENERATE_TIMEOUT_SEC" envDefault:"60"`
	RateLimitMs        int `env:"RATE_LIMIT_MS" envDefault:"700"`

	Temperature float64 `env:"LLM_TEMPERATURE" envDefault:"0.6"`
	MaxTokens   int     `env:"LLM_MAX_TOKENS" envDefault:"2000"`
}

// Load reads .env (if present) and the environment into a Config.
func Load() (*Config, error) {
	// Missing .env is fine, the environment alone may be complete.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Provider {
	case "yandex":
		if c.YandexAPIKey == "" {
			return fmt.Errorf("YANDEX_API_KEY is required for provider %q", c.Provider)
		}
		if c.YandexModelURI == "" {
			return fmt.Errorf("YANDEX_MODEL_URI is required for provider %q", c.Provider)
		}
	case "openai", "custom":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %q", c.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	return nil
}
