package telegram

import (
	"log"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"dnd-quest-bot/game"
)

// maxMessageLength is the Telegram per-message text limit.
const maxMessageLength = 4096

// Sender delivers engine output to Telegram chats. It implements
// game.Messenger: pre-formatted HTML goes out as is, narrative text is
// converted from the model's Markdown first. Long texts are split into
// chunks; the keyboard rides on the last chunk.
type Sender struct {
	api *tgbotapi.BotAPI
}

// NewSender creates a sender on top of an authorized bot API.
func NewSender(api *tgbotapi.BotAPI) *Sender {
	return &Sender{api: api}
}

// SendHTML sends pre-formatted HTML text.
func (s *Sender) SendHTML(chatID int64, text string, kb *game.Keyboard) error {
	return s.send(chatID, text, kb)
}

// SendNarrative converts the model's raw output to chat markup and
// sends it.
func (s *Sender) SendNarrative(chatID int64, text string, kb *game.Keyboard) error {
	return s.send(chatID, ToChatMarkup(text), kb)
}

func (s *Sender) send(chatID int64, text string, kb *game.Keyboard) error {
	chunks := splitMessage(text, maxMessageLength)

	for i, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, chunk)
		msg.ParseMode = tgbotapi.ModeHTML
		if i == len(chunks)-1 && kb != nil {
			msg.ReplyMarkup = toReplyMarkup(kb)
		}

		if _, err := s.api.Send(msg); err != nil {
			// HTML parse errors from partial tags in a chunk degrade to
			// plain text instead of losing the message.
			log.Printf("[TG] Send to chat %d failed, retrying as plain text: %v", chatID, err)
			msg.ParseMode = ""
			if _, err := s.api.Send(msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// toReplyMarkup maps the engine's transport-neutral keyboard onto the
// Telegram markup types.
func toReplyMarkup(kb *game.Keyboard) interface{} {
	if kb.Inline {
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb.Rows))
		for _, row := range kb.Rows {
			buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
			for _, btn := range row {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.Data))
			}
			rows = append(rows, buttons)
		}
		return tgbotapi.NewInlineKeyboardMarkup(rows...)
	}

	rows := make([][]tgbotapi.KeyboardButton, 0, len(kb.Rows))
	for _, row := range kb.Rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(btn.Text))
		}
		rows = append(rows, buttons)
	}
	markup := tgbotapi.NewReplyKeyboard(rows...)
	markup.ResizeKeyboard = kb.Resize
	return markup
}

// splitMessage cuts text into chunks of at most limit runes, preferring
// paragraph, line and word boundaries in that order.
func splitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	remaining := text
	for utf8.RuneCountInString(remaining) > limit {
		window := string([]rune(remaining)[:limit])
		cut := bestSplitPoint(window)
		chunks = append(chunks, strings.TrimRight(remaining[:cut], "\n "))
		remaining = strings.TrimLeft(remaining[cut:], "\n ")
	}
	if remaining != "" {
		chunks = append(chunks, remaining)
	}
	return chunks
}

// bestSplitPoint returns a byte offset to cut a window at, never zero.
func bestSplitPoint(window string) int {
	for _, sep := range []string{"\n\n", "\n", " "} {
		if idx := strings.LastIndex(window, sep); idx > 0 {
			return idx + len(sep)
		}
	}
	return len(window)
}
