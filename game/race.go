package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Races is the fixed numbered list of playable races. The number shown
// to the player is the slice index plus one.
var Races = []string{
	"Человек", "Эльф", "Дроу", "Гном", "Дварф", "Драконорожденный",
	"Тифлинг", "Полуэльф", "Полурослик", "Орк", "Полуорк", "Кобольд",
	"Шейфтер", "Людоящер",
}

// Classes is the fixed numbered list of character classes.
var Classes = []string{
	"Воин", "Паладин", "Плут", "Волшебник", "Жрец", "Бард",
	"Варвар", "Друид", "Монах", "Следопыт", "Чародей", "Изобретатель",
}

// Backgrounds is the fixed numbered list of character backgrounds.
var Backgrounds = []string{
	"Народный герой", "Благородный", "Отшельник", "Бродяга", "Артист",
	"Аферист", "Солдат", "Торговец", "Писарь", "Следопыт", "Ремесленник",
}

// raceBonuses holds the per-race ability increments.
var raceBonuses = map[string]Stats{
	"Человек":          {"Сила": 1, "Ловкость": 1, "Телосложение": 1, "Интеллект": 1, "Мудрость": 1, "Харизма": 1},
	"Эльф":             {"Ловкость": 2},
	"Дроу":             {"Ловкость": 2, "Харизма": 1},
	"Гном":             {"Интеллект": 2},
	"Дварф":            {"Телосложение": 2},
	"Драконорожденный": {"Сила": 2, "Харизма": 1},
	"Тифлинг":          {"Харизма": 2, "Интеллект": 1},
	"Полуэльф":         {"Харизма": 2},
	"Полурослик":       {"Ловкость": 2},
	"Орк":              {"Сила": 2, "Телосложение": 1},
	"Полуорк":          {"Сила": 2, "Телосложение": 1},
	"Кобольд":          {"Ловкость": 2},
	"Шейфтер":          {"Ловкость": 1},
	"Людоящер":         {"Телосложение": 2, "Мудрость": 1},
}

// NoBonusData is the report returned for a race without a bonus table
// entry.
const NoBonusData = "Нет данных о бонусах для этой расы."

// NoBonusChanges is the report returned when no bonus entry matched the
// stat mapping.
const NoBonusChanges = "Изменений нет."

// ApplyRaceBonus applies the racial ability increments to a copy of the
// given stats and returns the copy together with a human-readable
// report of the applied deltas. The input mapping is never mutated.
func ApplyRaceBonus(stats Stats, race string) (Stats, string) {
	updated := CloneStats(stats)

	bonuses, ok := raceBonuses[race]
	if !ok {
		return updated, NoBonusData
	}

	var lines []string
	for _, ability := range AbilityOrder {
		bonus, hasBonus := bonuses[ability]
		before, hasStat := updated[ability]
		if !hasBonus || !hasStat {
			continue
		}
		updated[ability] = before + bonus
		lines = append(lines, fmt.Sprintf("%s: +%d (%d → %d)", ability, bonus, before, updated[ability]))
	}

	if len(lines) == 0 {
		return updated, NoBonusChanges
	}
	return updated, strings.Join(lines, "\n")
}

// PickFromList resolves a 1-based numeric choice against a fixed list.
func PickFromList(list []string, input string) (string, bool) {
	num, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || num < 1 || num > len(list) {
		return "", false
	}
	return list[num-1], true
}

// FormatNumberedList renders a fixed list with 1-based numbers, one
// item per line, indented for Telegram display.
func FormatNumberedList(list []string) string {
	var b strings.Builder
	for i, item := range list {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, item))
	}
	return b.String()
}
