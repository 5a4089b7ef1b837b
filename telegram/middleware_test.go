package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBlocksBurst(t *testing.T) {
	rl := NewRateLimiter(50 * time.Millisecond)

	assert.True(t, rl.Allow(1))
	assert.False(t, rl.Allow(1), "immediate repeat must be blocked")
	assert.True(t, rl.Allow(2), "other chats are independent")

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow(1))
}

func TestRateLimiterDefaultThreshold(t *testing.T) {
	rl := NewRateLimiter(0)
	assert.Equal(t, DefaultRateLimit, rl.threshold)
}
