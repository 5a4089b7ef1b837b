package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCharacter() *Character {
	return &Character{
		Name:        "Ария",
		Race:        "Эльф",
		Class:       "Плут",
		Background:  "Бродяга",
		Stats:       fixedStats(),
		RaceBonus:   "да",
		Personality: "Любопытная и осторожная",
		Appearance:  "Высокая, тёмные волосы",
		Equipment:   "Кожаный доспех",
		Bag:         "Верёвка, фляга",
		Coins:       5,
		DayCounter:  1,
	}
}

func TestAssemblePrompt(t *testing.T) {
	got := AssemblePrompt(testCharacter(), "Ты — Мастер подземелий.")

	assert.True(t, strings.HasPrefix(got, "[CHARACTER]\n"))
	assert.Contains(t, got, "[/CHARACTER]\n")
	assert.True(t, strings.HasSuffix(got, "Ты — Мастер подземелий."))

	assert.Contains(t, got, "Имя: Ария\n")
	assert.Contains(t, got, "Раса: Эльф\n")
	assert.Contains(t, got, "Класс: Плут\n")
	assert.Contains(t, got, "Предыстория: Бродяга\n")
	assert.Contains(t, got, "Характеристики:\nСила: 10\n")
	assert.Contains(t, got, "Бонусы_расы: да\n")
	assert.Contains(t, got, "День_старта: 1\n")
	assert.Contains(t, got, "Монеты: 5\n")
	assert.Contains(t, got, "Сумка: Верёвка, фляга\n")
}

func TestAssemblePromptStableLineOrder(t *testing.T) {
	got := AssemblePrompt(testCharacter(), "база")

	labels := []string{
		"[CHARACTER]", "Имя:", "Раса:", "Класс:", "Предыстория:",
		"Характеристики:", "Бонусы_расы:", "Характер:", "Внешность:",
		"День_старта:", "Снаряжение:", "Монеты:", "Сумка:", "[/CHARACTER]",
	}
	pos := -1
	for _, label := range labels {
		idx := strings.Index(got, label)
		require.Greater(t, idx, pos, "label %q out of order", label)
		pos = idx
	}
}

func TestAssemblePromptDefaults(t *testing.T) {
	char := testCharacter()
	char.Equipment = ""
	char.Bag = ""

	got := AssemblePrompt(char, "база")

	assert.Contains(t, got, "Снаряжение: "+DefaultEquipment+"\n")
	assert.Contains(t, got, "Сумка: "+DefaultBag+"\n")
}

func TestAssemblePromptReflectsMutableFields(t *testing.T) {
	char := testCharacter()
	before := AssemblePrompt(char, "база")

	char.DayCounter = 3
	char.Coins = 42
	after := AssemblePrompt(char, "база")

	assert.NotEqual(t, before, after)
	assert.Contains(t, after, "День_старта: 3\n")
	assert.Contains(t, after, "Монеты: 42\n")
}
