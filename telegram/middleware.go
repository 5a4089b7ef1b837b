package telegram

import (
	"log"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// DefaultRateLimit is the minimum interval between handled messages
// from one chat.
const DefaultRateLimit = 700 * time.Millisecond

// RateLimiter drops messages that arrive faster than the threshold,
// per chat.
type RateLimiter struct {
	mu        sync.Mutex
	lastSeen  map[int64]time.Time
	threshold time.Duration
}

// NewRateLimiter creates a rate limiter; a non-positive threshold
// falls back to DefaultRateLimit.
func NewRateLimiter(threshold time.Duration) *RateLimiter {
	if threshold <= 0 {
		threshold = DefaultRateLimit
	}
	return &RateLimiter{
		lastSeen:  make(map[int64]time.Time),
		threshold: threshold,
	}
}

// Allow reports whether a message from the chat may be handled now.
func (rl *RateLimiter) Allow(chatID int64) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	last, seen := rl.lastSeen[chatID]
	if !seen || now.Sub(last) > rl.threshold {
		rl.lastSeen[chatID] = now
		return true
	}
	return false
}

// logUpdate logs every incoming update before dispatch.
func logUpdate(update *tgbotapi.Update) {
	switch {
	case update.Message != nil:
		log.Printf("[MSG] User %d (%s), chat %d: %q",
			update.Message.From.ID,
			update.Message.From.UserName,
			update.Message.Chat.ID,
			update.Message.Text,
		)
	case update.CallbackQuery != nil:
		log.Printf("[CALLBACK] User %d: %s",
			update.CallbackQuery.From.ID,
			update.CallbackQuery.Data,
		)
	}
}
