// Package game provides the adventure state machine and character rules
package game

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Stats maps ability names to scores.
type Stats map[string]int

// AbilityOrder is the fixed display order of the six abilities.
var AbilityOrder = []string{"Сила", "Ловкость", "Телосложение", "Интеллект", "Мудрость", "Харизма"}

// RollAbilityScores rolls 4d6 for each ability, drops the lowest die
// and sums the remaining three. Every score lands in [3,18]. Re-rolls
// happen only by calling again.
func RollAbilityScores() Stats {
	stats := make(Stats, len(AbilityOrder))
	for _, ability := range AbilityOrder {
		stats[ability] = roll4d6DropLowest()
	}
	return stats
}

// roll4d6DropLowest rolls four d6 and sums the best three.
func roll4d6DropLowest() int {
	rolls := []int{rollDie(6), rollDie(6), rollDie(6), rollDie(6)}
	sort.Ints(rolls)
	return rolls[1] + rolls[2] + rolls[3]
}

// RollCoins rolls the starting purse, 1d6+1 gold.
func RollCoins() int {
	return rollDie(6) + 1
}

func rollDie(sides int) int {
	return rand.Intn(sides) + 1
}

// FormatStats renders the stat block one "Name: value" line per
// ability, in display order.
func FormatStats(stats Stats) string {
	lines := make([]string, 0, len(AbilityOrder))
	for _, ability := range AbilityOrder {
		if value, ok := stats[ability]; ok {
			lines = append(lines, fmt.Sprintf("%s: %d", ability, value))
		}
	}
	return strings.Join(lines, "\n")
}

// CloneStats returns an independent copy of the stat mapping.
func CloneStats(stats Stats) Stats {
	clone := make(Stats, len(stats))
	for ability, value := range stats {
		clone[ability] = value
	}
	return clone
}
