package game

import (
	"fmt"
	"strings"
)

// DefaultBasePrompt is the fallback system instruction used when the
// prompt store holds no base prompt at startup.
const DefaultBasePrompt = `Ты — Мастер подземелий в текстовой игре Dungeons and Dragons.
Веди приключение на русском языке от второго лица, короткими сценами.
Учитывай характеристики, снаряжение и предысторию персонажа из блока [CHARACTER].
В конце каждой сцены предлагай ровно три пронумерованных варианта действий.
Следи за монетами и счётчиком дней персонажа.`

// AssemblePrompt serializes the character into the fixed [CHARACTER]
// block and appends the base instruction text. The block keeps a stable
// line order and never omits a field, so the model can rely on its
// shape. Callers rebuild it on every write since coins and the day
// counter change between turns.
func AssemblePrompt(char *Character, basePrompt string) string {
	equipment := char.Equipment
	if equipment == "" {
		equipment = DefaultEquipment
	}
	bag := char.Bag
	if bag == "" {
		bag = DefaultBag
	}

	var b strings.Builder
	b.WriteString("[CHARACTER]\n")
	fmt.Fprintf(&b, "Имя: %s\n", char.Name)
	fmt.Fprintf(&b, "Раса: %s\n", char.Race)
	fmt.Fprintf(&b, "Класс: %s\n", char.Class)
	fmt.Fprintf(&b, "Предыстория: %s\n", char.Background)
	fmt.Fprintf(&b, "Характеристики:\n%s\n", FormatStats(char.Stats))
	fmt.Fprintf(&b, "Бонусы_расы: %s\n", char.RaceBonus)
	fmt.Fprintf(&b, "Характер: %s\n", char.Personality)
	fmt.Fprintf(&b, "Внешность: %s\n", char.Appearance)
	fmt.Fprintf(&b, "День_старта: %d\n", char.DayCounter)
	fmt.Fprintf(&b, "Снаряжение: %s\n", equipment)
	fmt.Fprintf(&b, "Монеты: %d\n", char.Coins)
	fmt.Fprintf(&b, "Сумка: %s\n", bag)
	b.WriteString("[/CHARACTER]\n")
	b.WriteString("\n")
	b.WriteString(basePrompt)
	return b.String()
}
