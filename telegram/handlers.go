package telegram

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"dnd-quest-bot/game"
)

const helpText = "📖 <b>Команды</b>\n\n" +
	"/start — начать игру или создать нового персонажа\n" +
	"/статус — характеристики и состояние персонажа\n" +
	"/инвентарь — снаряжение и сумка\n" +
	"/заклинания — о заклинаниях класса\n" +
	"/торговля — кошелёк\n" +
	"/отдых — отдохнуть до следующего дня\n" +
	"/help — это сообщение\n\n" +
	"В игре выбирай варианты кнопками 1, 2, 3 или опиши своё действие."

// handleMessage routes one text message: commands go to their own
// engine methods, everything else enters the state machine.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if !b.limiter.Allow(chatID) {
		log.Printf("[TG] Rate limit: dropped message from chat %d", chatID)
		return
	}

	sess := b.sessions.GetOrCreate(chatID)

	var err error
	switch commandName(msg.Text, b.api.Self.UserName) {
	case "start":
		err = b.engine.Greet(sess)
	case "help":
		err = b.sendHelp(chatID)
	case "статус":
		err = b.engine.Status(sess)
	case "инвентарь":
		err = b.engine.Inventory(sess)
	case "заклинания":
		err = b.engine.Spells(sess)
	case "торговля":
		err = b.engine.Trade(sess)
	case "отдых":
		err = b.engine.Rest(ctx, sess)
	default:
		err = b.engine.HandleText(ctx, sess, msg.Text)
	}
	if err != nil {
		log.Printf("[TG] Chat %d: handler failed: %v", chatID, err)
	}
}

// handleCallback acknowledges the button press and dispatches it.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.Printf("[TG] Callback ack failed: %v", err)
	}
	if cq.Message == nil {
		return
	}

	sess := b.sessions.GetOrCreate(cq.Message.Chat.ID)

	switch cq.Data {
	case game.StartCallback:
		if err := b.engine.BeginWizard(sess); err != nil {
			log.Printf("[TG] Chat %d: wizard start failed: %v", sess.ChatID, err)
		}
	default:
		log.Printf("[TG] Unknown callback data: %q", cq.Data)
	}
}

func (b *Bot) sendHelp(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, helpText)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

// commandName extracts a command from a leading slash, tolerating the
// Cyrillic keyboard commands Telegram does not mark as bot_command
// entities and an @botname suffix in group chats.
func commandName(text, botName string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	name := strings.Fields(text[1:])
	if len(name) == 0 {
		return ""
	}
	cmd := strings.ToLower(name[0])
	cmd = strings.TrimSuffix(cmd, "@"+strings.ToLower(botName))
	return cmd
}
