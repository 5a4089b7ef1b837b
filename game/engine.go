package game

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"dnd-quest-bot/llm"
	"dnd-quest-bot/store"
)

// Messenger delivers outbound messages for the engine. The transport
// implements it; tests substitute a recorder.
type Messenger interface {
	// SendHTML sends pre-formatted HTML text.
	SendHTML(chatID int64, text string, kb *Keyboard) error

	// SendNarrative sends raw model output. The transport converts its
	// Markdown subset to chat markup before delivery; the engine keeps
	// the raw text in history.
	SendNarrative(chatID int64, text string, kb *Keyboard) error
}

// DefaultGenerateTimeout bounds one generation call.
const DefaultGenerateTimeout = 60 * time.Second

// History trim bounds: the seed turn right after the wizard, and the
// ongoing dialogue loop.
const (
	seedMaxPairs     = 8
	dialogueMaxPairs = 10
)

// Engine drives the character creation wizard and the play loop for
// every session. It owns no I/O of its own: messages go through the
// Messenger, generation through the Provider, the assembled system
// prompt through the PromptStore.
type Engine struct {
	provider   llm.Provider
	prompts    store.PromptStore
	scene      *SceneTemplate
	flavor     *FlavorPicker
	out        Messenger
	basePrompt string
	timeout    time.Duration
}

// EngineConfig wires the engine collaborators.
type EngineConfig struct {
	Provider   llm.Provider
	Prompts    store.PromptStore
	Scene      *SceneTemplate
	Flavor     *FlavorPicker
	Out        Messenger
	BasePrompt string        // system instruction block; DefaultBasePrompt if empty
	Timeout    time.Duration // generation timeout; DefaultGenerateTimeout if zero
}

// NewEngine creates the conversation engine.
func NewEngine(cfg EngineConfig) *Engine {
	basePrompt := cfg.BasePrompt
	if strings.TrimSpace(basePrompt) == "" {
		basePrompt = DefaultBasePrompt
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultGenerateTimeout
	}
	return &Engine{
		provider:   cfg.Provider,
		prompts:    cfg.Prompts,
		scene:      cfg.Scene,
		flavor:     cfg.Flavor,
		out:        cfg.Out,
		basePrompt: basePrompt,
		timeout:    timeout,
	}
}

// Greet resets the session and sends the welcome message with the
// start button. Used for /start and for explicit restarts.
func (e *Engine) Greet(sess *Session) error {
	sess.Reset()
	return e.out.SendHTML(sess.ChatID,
		"⚔️ <b>Добро пожаловать в игру Dungeons and Dragons!</b> ⚔️\n\nОсмелишься ли ты сделать первый шаг?",
		StartKeyboard())
}

// BeginWizard starts the character creation wizard from the start
// button callback.
func (e *Engine) BeginWizard(sess *Session) error {
	sess.mu.Lock()
	sess.state = StateCreatingRace
	sess.wizard = &WizardData{}
	sess.character = nil
	sess.history = nil
	sess.mu.Unlock()

	log.Printf("[ENGINE] Chat %d: wizard started", sess.ChatID)

	text := "🛡️ <b>Создание персонажа — шаг 1</b>\n<i>Выберите расу:</i>\n\n" +
		FormatNumberedList(Races) +
		"\n<i>Введите номер выбранной расы:</i>"
	return e.out.SendHTML(sess.ChatID, text, nil)
}

// HandleText routes one plain text message through the state machine.
func (e *Engine) HandleText(ctx context.Context, sess *Session, text string) error {
	sess.mu.Lock()
	state := sess.state
	sess.mu.Unlock()

	switch state {
	case StateIdle:
		return e.out.SendHTML(sess.ChatID, "Напиши /start, чтобы начать приключение.", nil)

	case StateCreatingRace, StateCreatingName, StateCreatingClass,
		StateCreatingBackground, StateCreatingStatsBonus,
		StateCreatingPersonality, StateCreatingAppearance:
		return e.handleWizardStep(ctx, sess, state, text)

	case StateAwaitingModel:
		// Interleaved input is dropped, never queued into history.
		return e.out.SendHTML(sess.ChatID, e.flavor.Waiting(), nil)

	case StateDialogue:
		return e.handleDialogue(ctx, sess, text)

	case StateCustomAction:
		return e.handleCustomAction(ctx, sess, text)

	default:
		return e.out.SendHTML(sess.ChatID, "Что-то пошло не так. Напиши /start для перезапуска.", nil)
	}
}

// handleWizardStep advances one creation step. Invalid input re-prompts
// the same state and never advances.
func (e *Engine) handleWizardStep(ctx context.Context, sess *Session, state State, text string) error {
	sess.mu.Lock()
	if sess.state != state || sess.wizard == nil {
		sess.mu.Unlock()
		return e.out.SendHTML(sess.ChatID, "Напиши /start, чтобы начать приключение.", nil)
	}
	wizard := sess.wizard

	var reply string
	finish := false

	switch state {
	case StateCreatingRace:
		race, ok := PickFromList(Races, text)
		if !ok {
			reply = "❗ Пожалуйста, введите только номер расы из списка."
			break
		}
		wizard.Race = race
		sess.state = StateCreatingName
		reply = "✏️ <b>Создание персонажа — шаг 2</b>\n<i>Введите имя персонажа:</i>"

	case StateCreatingName:
		name, err := ValidateText(text, 2, 50)
		if err != nil {
			reply = err.Error()
			break
		}
		wizard.Name = name
		sess.state = StateCreatingClass
		reply = "⚔️ <b>Создание персонажа — шаг 3</b>\n<i>Выберите класс:</i>\n\n" +
			FormatNumberedList(Classes) +
			"\n<i>Введите номер выбранного класса:</i>"

	case StateCreatingClass:
		class, ok := PickFromList(Classes, text)
		if !ok {
			reply = "❗ Введи номер класса (например: 1)."
			break
		}
		wizard.Class = class
		sess.state = StateCreatingBackground
		reply = "📖 <b>Создание персонажа — шаг 4</b>\n<i>Выберите предысторию:</i>\n\n" +
			FormatNumberedList(Backgrounds) +
			"\n<i>Введите номер выбранной предыстории:</i>"

	case StateCreatingBackground:
		background, ok := PickFromList(Backgrounds, text)
		if !ok {
			reply = "❗ Введи номер предыстории."
			break
		}
		wizard.Background = background
		// Stats roll on entry; a restart re-enters and re-rolls.
		wizard.Stats = RollAbilityScores()
		sess.state = StateCreatingStatsBonus
		reply = "🎲 <b>Создание персонажа — шаг 5</b>\n\n<b>Характеристики:</b>\n" +
			indent(FormatStats(wizard.Stats)) +
			"\n\n<i>Применить бонусы расы автоматически? (да/нет)</i>"

	case StateCreatingStatsBonus:
		answer := strings.ToLower(strings.TrimSpace(text))
		if answer != "да" && answer != "нет" {
			reply = "Ответь «да» или «нет»."
			break
		}
		wizard.BonusAnswer = answer
		bonusNote := ""
		if answer == "да" {
			updated, report := ApplyRaceBonus(wizard.Stats, wizard.Race)
			wizard.Stats = updated
			wizard.BonusReport = report
			bonusNote = "<b>Бонусы расы:</b>\n" + indent(report) + "\n\n"
		}
		sess.state = StateCreatingPersonality
		reply = bonusNote +
			"🧠 <b>Шаг 6: Опишите характер персонажа</b>\n" +
			"<i>Опишите основные черты характера, мотивации, страхи и т.д.</i>"

	case StateCreatingPersonality:
		personality, err := ValidateText(text, 10, 1000)
		if err != nil {
			reply = err.Error()
			break
		}
		wizard.Personality = personality
		sess.state = StateCreatingAppearance
		reply = "🎨 <b>Шаг 7: Опишите внешность персонажа</b>\n" +
			"<i>Опишите внешние черты, одежду, отличительные особенности.</i>"

	case StateCreatingAppearance:
		appearance, err := ValidateText(text, 10, 1000)
		if err != nil {
			reply = err.Error()
			break
		}
		wizard.Appearance = appearance
		finish = true
	}
	sess.mu.Unlock()

	if finish {
		return e.finishCreation(ctx, sess)
	}
	return e.out.SendHTML(sess.ChatID, reply, nil)
}

// finishCreation builds the character, persists the assembled prompt
// and runs the opening generation turn.
func (e *Engine) finishCreation(ctx context.Context, sess *Session) error {
	sess.mu.Lock()
	wizard := sess.wizard
	if wizard == nil {
		sess.mu.Unlock()
		return e.out.SendHTML(sess.ChatID, "Напиши /start, чтобы начать приключение.", nil)
	}

	char := &Character{
		Name:        wizard.Name,
		Race:        wizard.Race,
		Class:       wizard.Class,
		Background:  wizard.Background,
		Stats:       wizard.Stats,
		RaceBonus:   wizard.BonusAnswer,
		Personality: wizard.Personality,
		Appearance:  wizard.Appearance,
		Equipment:   DefaultEquipment,
		Bag:         DefaultBag,
		Coins:       RollCoins(),
		DayCounter:  1,
	}
	sess.mu.Unlock()

	prompt := AssemblePrompt(char, e.basePrompt)
	if err := e.prompts.Write(ctx, prompt); err != nil {
		// Persistence failure aborts the finishing transition: no
		// character is finalized and the player retries the last step.
		log.Printf("[ENGINE] Chat %d: prompt store write failed in state %s: %v", sess.ChatID, StateCreatingAppearance, err)
		return e.out.SendHTML(sess.ChatID,
			"⚠️ Ошибка при сохранении персонажа. Отправь описание внешности ещё раз.", nil)
	}

	sess.mu.Lock()
	sess.character = char
	sess.wizard = nil
	sess.history = TrimHistory([]llm.Message{{
		Role:    llm.RoleUser,
		Content: "Начни приключение. Кратко опиши стартовую сцену и предложи три пронумерованных варианта действий.",
	}}, seedMaxPairs)
	sess.state = StateAwaitingModel
	sess.mu.Unlock()

	log.Printf("[ENGINE] Chat %d: character %q finalized", sess.ChatID, char.Name)

	// Send failures must not skip the generation call: the session is
	// already in AwaitingModel and only generateTurn moves it on.
	if err := e.out.SendHTML(sess.ChatID, "✨ Персонаж создан! Начало приключения:", nil); err != nil {
		log.Printf("[ENGINE] Chat %d: creation notice failed: %v", sess.ChatID, err)
	}
	opening := e.scene.Render(char, FirstSceneText)
	if err := e.out.SendHTML(sess.ChatID, opening, GameKeyboard()); err != nil {
		log.Printf("[ENGINE] Chat %d: opening scene failed: %v", sess.ChatID, err)
	}

	return e.generateTurn(ctx, sess)
}

// handleDialogue routes dialogue input: a numbered choice, the custom
// action sentinel, or a hint for anything else. Command keywords never
// reach this path; the transport dispatches them separately.
func (e *Engine) handleDialogue(ctx context.Context, sess *Session, text string) error {
	input := strings.TrimSpace(text)

	switch input {
	case "1", "2", "3":
		return e.playTurn(ctx, sess, fmt.Sprintf("Я выбираю вариант %s", input))
	}

	if isCustomActionRequest(input) {
		sess.mu.Lock()
		sess.state = StateCustomAction
		sess.mu.Unlock()
		return e.out.SendHTML(sess.ChatID, "✍️ <i>Опиши своё действие:</i>", nil)
	}

	return e.out.SendHTML(sess.ChatID,
		"❗ Выбери вариант кнопкой (1, 2 или 3) или нажми «✍️ Свой вариант».",
		ChoiceKeyboard())
}

// handleCustomAction accepts the next free-form text as the player's
// action and feeds it through the shared turn path.
func (e *Engine) handleCustomAction(ctx context.Context, sess *Session, text string) error {
	action, err := ValidateText(text, 3, 500)
	if err != nil {
		return e.out.SendHTML(sess.ChatID, err.Error(), nil)
	}
	return e.playTurn(ctx, sess, action)
}

// playTurn is the shared turn-processing path for numbered choices and
// custom actions.
func (e *Engine) playTurn(ctx context.Context, sess *Session, userText string) error {
	sess.mu.Lock()
	if sess.state == StateAwaitingModel {
		sess.mu.Unlock()
		return e.out.SendHTML(sess.ChatID, e.flavor.Waiting(), nil)
	}
	sess.history = TrimHistory(append(sess.history, llm.Message{Role: llm.RoleUser, Content: userText}), dialogueMaxPairs)
	sess.state = StateAwaitingModel
	sess.mu.Unlock()

	if err := e.out.SendHTML(sess.ChatID, e.flavor.Thinking(), nil); err != nil {
		log.Printf("[ENGINE] Chat %d: thinking notice failed: %v", sess.ChatID, err)
	}

	return e.generateTurn(ctx, sess)
}

// generateTurn runs one bounded generation call against the current
// history. Any failure is reported to the player and the session is
// forced to the dialogue fallback state so it is never wedged in
// AwaitingModel.
func (e *Engine) generateTurn(ctx context.Context, sess *Session) error {
	sess.mu.Lock()
	history := make([]llm.Message, len(sess.history))
	copy(history, sess.history)
	sess.mu.Unlock()

	genCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	response, err := e.provider.Generate(genCtx, history)
	if err != nil {
		log.Printf("[ENGINE] Chat %d: generation failed in state %s: %v", sess.ChatID, StateAwaitingModel, err)
		sess.mu.Lock()
		sess.state = StateDialogue
		sess.mu.Unlock()
		return e.out.SendHTML(sess.ChatID, llm.UserMessage(err), ChoiceKeyboard())
	}
	if strings.TrimSpace(response) == "" {
		response = "⚠️ Пустой ответ от сервера."
	}

	// History keeps the raw model output; conversion to chat markup
	// happens only on the way out.
	sess.mu.Lock()
	sess.history = TrimHistory(append(sess.history, llm.Message{Role: llm.RoleAssistant, Content: response}), dialogueMaxPairs)
	sess.state = StateDialogue
	sess.mu.Unlock()

	return e.out.SendNarrative(sess.ChatID, response, ChoiceKeyboard())
}

// isCustomActionRequest matches the custom action sentinel button.
func isCustomActionRequest(input string) bool {
	lower := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(input, "✍️")))
	return lower == "свой вариант"
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
