package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dnd-quest-bot/config"
	"dnd-quest-bot/game"
	"dnd-quest-bot/llm"
	"dnd-quest-bot/store"
	"dnd-quest-bot/telegram"
)

func main() {
	log.Println("DnD Quest Bot starting")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Config loaded. Provider: %s", cfg.Provider)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prompts, err := newPromptStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open prompt store: %v", err)
	}
	defer prompts.Close()

	provider, err := llm.NewProviderFromConfig(&llm.ProviderConfig{
		Name:        cfg.Provider,
		APIKey:      providerKey(cfg),
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.OpenAIModel,
		ModelURI:    cfg.YandexModelURI,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}, prompts)
	if err != nil {
		log.Fatalf("Failed to create provider: %v", err)
	}
	defer provider.Close()

	api, err := telegram.Connect(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("Failed to connect to Telegram: %v", err)
	}

	engine := game.NewEngine(game.EngineConfig{
		Provider: provider,
		Prompts:  prompts,
		Scene:    game.LoadSceneTemplate(cfg.ScenePath),
		Flavor:   game.NewFlavorPicker(rand.NewSource(time.Now().UnixNano())),
		Out:      telegram.NewSender(api),
		Timeout:  time.Duration(cfg.GenerateTimeoutSec) * time.Second,
	})

	bot := telegram.NewBot(api, engine, time.Duration(cfg.RateLimitMs)*time.Millisecond)
	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Bot stopped with error: %v", err)
	}
	log.Println("Shutdown complete")
}

// newPromptStore picks Redis when an address is configured, otherwise
// the file-backed store.
func newPromptStore(ctx context.Context, cfg *config.Config) (store.PromptStore, error) {
	if cfg.RedisAddr != "" {
		log.Printf("Prompt store: redis at %s", cfg.RedisAddr)
		return store.NewRedisPromptStore(ctx, store.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	log.Printf("Prompt store: file at %s", cfg.PromptPath)
	return store.NewFilePromptStore(cfg.PromptPath), nil
}

func providerKey(cfg *config.Config) string {
	if cfg.Provider == "yandex" {
		return cfg.YandexAPIKey
	}
	return cfg.OpenAIAPIKey
}
