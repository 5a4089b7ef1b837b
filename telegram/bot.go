package telegram

import (
	"context"
	"log"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"dnd-quest-bot/game"
)

// pollTimeout is the long-polling timeout in seconds.
const pollTimeout = 30

// Bot polls Telegram for updates and dispatches them to the game
// engine. Every update is handled on its own goroutine; per-session
// ordering is the engine's concern, not the transport's.
type Bot struct {
	api      *tgbotapi.BotAPI
	engine   *game.Engine
	sessions *game.SessionManager
	limiter  *RateLimiter
	wg       sync.WaitGroup
}

// Connect authorizes against the Bot API.
func Connect(token string) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Printf("[TG] Authorized as @%s", api.Self.UserName)
	return api, nil
}

// NewBot creates the transport around an authorized API and a ready
// engine.
func NewBot(api *tgbotapi.BotAPI, engine *game.Engine, rateLimit time.Duration) *Bot {
	return &Bot{
		api:      api,
		engine:   engine,
		sessions: game.NewSessionManager(),
		limiter:  NewRateLimiter(rateLimit),
	}
}

// Run polls for updates until the context is cancelled, then waits for
// in-flight handlers to finish.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	log.Println("[TG] Polling for updates")
	for update := range updates {
		update := update
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			b.handleUpdate(ctx, update)
		}()
	}

	b.wg.Wait()
	log.Println("[TG] Stopped")
	return ctx.Err()
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[TG] Panic in update handler: %v", r)
		}
	}()

	logUpdate(&update)

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.Text != "":
		b.handleMessage(ctx, update.Message)
	}
}
