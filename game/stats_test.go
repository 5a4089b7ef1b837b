package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollAbilityScoresRange(t *testing.T) {
	for i := 0; i < 10000; i++ {
		stats := RollAbilityScores()
		require.Len(t, stats, 6)
		for _, ability := range AbilityOrder {
			value, ok := stats[ability]
			require.True(t, ok, "missing ability %s", ability)
			require.GreaterOrEqual(t, value, 3)
			require.LessOrEqual(t, value, 18)
		}
	}
}

func TestRollCoinsRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		coins := RollCoins()
		require.GreaterOrEqual(t, coins, 2)
		require.LessOrEqual(t, coins, 7)
	}
}

func TestFormatStatsOrder(t *testing.T) {
	stats := Stats{
		"Харизма": 8, "Сила": 15, "Мудрость": 12,
		"Ловкость": 14, "Интеллект": 10, "Телосложение": 13,
	}
	want := "Сила: 15\nЛовкость: 14\nТелосложение: 13\nИнтеллект: 10\nМудрость: 12\nХаризма: 8"
	assert.Equal(t, want, FormatStats(stats))
}

func TestCloneStatsIndependent(t *testing.T) {
	orig := Stats{"Сила": 10}
	clone := CloneStats(orig)
	clone["Сила"] = 18
	assert.Equal(t, 10, orig["Сила"])
}
