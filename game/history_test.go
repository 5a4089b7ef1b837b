package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnd-quest-bot/llm"
)

func makeHistory(n int) []llm.Message {
	history := make([]llm.Message, 0, n)
	for i := 0; i < n; i++ {
		role := llm.RoleUser
		if i%2 == 1 {
			role = llm.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: fmt.Sprintf("turn %d", i)})
	}
	return history
}

func TestTrimHistoryKeepsMostRecent(t *testing.T) {
	trimmed := TrimHistory(makeHistory(30), 8)

	require.Len(t, trimmed, 17)
	assert.Equal(t, "turn 13", trimmed[0].Content)
	assert.Equal(t, "turn 29", trimmed[16].Content)
	for i := 1; i < len(trimmed); i++ {
		assert.Equal(t, fmt.Sprintf("turn %d", 13+i), trimmed[i].Content, "order must be preserved")
	}
}

func TestTrimHistoryUnderLimitUntouched(t *testing.T) {
	history := makeHistory(5)
	trimmed := TrimHistory(history, 8)
	assert.Len(t, trimmed, 5)
	assert.Equal(t, history, trimmed)
}

func TestTrimHistoryExactLimit(t *testing.T) {
	trimmed := TrimHistory(makeHistory(17), 8)
	assert.Len(t, trimmed, 17)
}

func TestTrimHistoryOddBoundKeepsLeadingTurn(t *testing.T) {
	// 2*1+1 = 3: a leading unpaired turn survives one trimmed pair.
	trimmed := TrimHistory(makeHistory(4), 1)
	require.Len(t, trimmed, 3)
	assert.Equal(t, "turn 1", trimmed[0].Content)
}
