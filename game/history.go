package game

import "dnd-quest-bot/llm"

// TrimHistory keeps at most 2*maxPairs+1 most recent turns, dropping
// the oldest first. The odd bound always retains a leading unpaired
// turn when one exists. This is the only backpressure on the context
// size sent to the model, so it runs after every append.
func TrimHistory(history []llm.Message, maxPairs int) []llm.Message {
	limit := maxPairs*2 + 1
	if len(history) <= limit {
		return history
	}
	trimmed := make([]llm.Message, limit)
	copy(trimmed, history[len(history)-limit:])
	return trimmed
}
