package game

import (
	"context"
	"fmt"
	"log"
)

// Gameplay commands live outside the dialogue history: they answer from
// the character record and never become model context.

const noCharacterReply = "Персонаж ещё не создан. Напиши /start, чтобы начать приключение."

// Status reports the character summary.
func (e *Engine) Status(sess *Session) error {
	char := sess.Character()
	if char == nil {
		return e.out.SendHTML(sess.ChatID, noCharacterReply, nil)
	}

	text := fmt.Sprintf(
		"🎭 <b>%s</b> — %s, %s\nПредыстория: %s\n\n<b>Характеристики:</b>\n%s\n\n📅 День: %d\n💰 Монеты: %d",
		char.Name, char.Race, char.Class, char.Background,
		indent(FormatStats(char.Stats)), char.DayCounter, char.Coins)
	return e.out.SendHTML(sess.ChatID, text, GameKeyboard())
}

// Inventory reports equipment and bag contents.
func (e *Engine) Inventory(sess *Session) error {
	char := sess.Character()
	if char == nil {
		return e.out.SendHTML(sess.ChatID, noCharacterReply, nil)
	}

	text := fmt.Sprintf("🎒 <b>Инвентарь</b>\n\nСнаряжение: %s\nСумка: %s", char.Equipment, char.Bag)
	return e.out.SendHTML(sess.ChatID, text, GameKeyboard())
}

// Spells points spellcasting back at the game master.
func (e *Engine) Spells(sess *Session) error {
	char := sess.Character()
	if char == nil {
		return e.out.SendHTML(sess.ChatID, noCharacterReply, nil)
	}

	text := fmt.Sprintf("📜 Заклинаниями класса «%s» распоряжается Мастер. Спроси о них действием в игре.", char.Class)
	return e.out.SendHTML(sess.ChatID, text, GameKeyboard())
}

// Trade reports the purse.
func (e *Engine) Trade(sess *Session) error {
	char := sess.Character()
	if char == nil {
		return e.out.SendHTML(sess.ChatID, noCharacterReply, nil)
	}

	text := fmt.Sprintf("💰 У тебя %d монет. Торговлю веди действиями в игре.", char.Coins)
	return e.out.SendHTML(sess.ChatID, text, GameKeyboard())
}

// Rest advances the day counter and rewrites the stored prompt so the
// model sees the new day on the next turn.
func (e *Engine) Rest(ctx context.Context, sess *Session) error {
	sess.mu.Lock()
	char := sess.character
	if char == nil {
		sess.mu.Unlock()
		return e.out.SendHTML(sess.ChatID, noCharacterReply, nil)
	}
	char.DayCounter++
	day := char.DayCounter
	prompt := AssemblePrompt(char, e.basePrompt)
	sess.mu.Unlock()

	if err := e.prompts.Write(ctx, prompt); err != nil {
		log.Printf("[ENGINE] Chat %d: prompt store write failed after rest: %v", sess.ChatID, err)
	}

	return e.out.SendHTML(sess.ChatID, fmt.Sprintf("🌙 Вы отдохнули. Наступил день %d.", day), GameKeyboard())
}
