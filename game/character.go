package game

// Default free-text fields for a fresh character.
const (
	DefaultEquipment = "Базовая экипировка по классу + 1 случайный предмет"
	DefaultBag       = "Пустая сумка"
)

// Character is the finished player character. It is fully defined only
// after all wizard steps complete; partial data lives in WizardData and
// must never be used to assemble a prompt. Coins and DayCounter are the
// only fields gameplay commands mutate afterwards.
type Character struct {
	Name        string
	Race        string
	Class       string
	Background  string
	Stats       Stats
	RaceBonus   string // "да"/"нет" as answered at the bonus step
	Personality string
	Appearance  string
	Equipment   string
	Bag         string
	Coins       int
	DayCounter  int
}
