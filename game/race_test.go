package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedStats() Stats {
	return Stats{
		"Сила": 10, "Ловкость": 11, "Телосложение": 12,
		"Интеллект": 13, "Мудрость": 14, "Харизма": 15,
	}
}

func TestApplyRaceBonusElf(t *testing.T) {
	updated, report := ApplyRaceBonus(fixedStats(), "Эльф")

	assert.Equal(t, 13, updated["Ловкость"])
	assert.Equal(t, 10, updated["Сила"])
	assert.Equal(t, "Ловкость: +2 (11 → 13)", report)
}

func TestApplyRaceBonusHumanAllSix(t *testing.T) {
	updated, report := ApplyRaceBonus(fixedStats(), "Человек")

	for _, ability := range AbilityOrder {
		assert.Equal(t, fixedStats()[ability]+1, updated[ability])
	}
	assert.Contains(t, report, "Сила: +1 (10 → 11)")
	assert.Contains(t, report, "Харизма: +1 (15 → 16)")
}

func TestApplyRaceBonusUnknownRace(t *testing.T) {
	stats := fixedStats()
	updated, report := ApplyRaceBonus(stats, "Голем")

	assert.Equal(t, NoBonusData, report)
	assert.Equal(t, stats, updated)
}

func TestApplyRaceBonusIsPure(t *testing.T) {
	stats := fixedStats()

	first, firstReport := ApplyRaceBonus(stats, "Дроу")
	second, secondReport := ApplyRaceBonus(stats, "Дроу")

	assert.Equal(t, first, second)
	assert.Equal(t, firstReport, secondReport)
	assert.Equal(t, fixedStats(), stats, "input mapping must never be mutated")
}

func TestEveryRaceHasBonusEntry(t *testing.T) {
	for _, race := range Races {
		_, report := ApplyRaceBonus(fixedStats(), race)
		require.NotEqual(t, NoBonusData, report, "race %s has no bonus entry", race)
	}
}

func TestPickFromList(t *testing.T) {
	race, ok := PickFromList(Races, "1")
	require.True(t, ok)
	assert.Equal(t, "Человек", race)

	race, ok = PickFromList(Races, " 14 ")
	require.True(t, ok)
	assert.Equal(t, "Людоящер", race)

	for _, input := range []string{"0", "15", "-1", "abc", "", "1.5"} {
		_, ok := PickFromList(Races, input)
		assert.False(t, ok, "input %q must be rejected", input)
	}
}

func TestFormatNumberedList(t *testing.T) {
	got := FormatNumberedList([]string{"Воин", "Паладин"})
	assert.Equal(t, "  1. Воин\n  2. Паладин\n", got)
}
