package game

// Button is one selectable label. Data is the callback payload for
// inline buttons and empty for reply-keyboard buttons.
type Button struct {
	Text string
	Data string
}

// Keyboard is a transport-agnostic keyboard descriptor: a grid of
// selectable labels, either inline (attached to a message) or a
// persistent reply keyboard.
type Keyboard struct {
	Rows   [][]Button
	Inline bool
	Resize bool
}

// StartCallback is the callback payload of the start button.
const StartCallback = "start_game"

// CustomActionLabel is the sentinel button that switches the dialogue
// into free-form action entry.
const CustomActionLabel = "✍️ Свой вариант"

// StartKeyboard returns the inline keyboard of the welcome message.
func StartKeyboard() *Keyboard {
	return &Keyboard{
		Inline: true,
		Rows: [][]Button{
			{{Text: "🎲 Начать приключение", Data: StartCallback}},
		},
	}
}

// ChoiceKeyboard returns the dialogue keyboard with the three numbered
// choices and the custom action button.
func ChoiceKeyboard() *Keyboard {
	return &Keyboard{
		Resize: true,
		Rows: [][]Button{
			{{Text: "1"}, {Text: "2"}, {Text: "3"}},
			{{Text: CustomActionLabel}},
		},
	}
}

// GameKeyboard returns the persistent keyboard with the out-of-dialogue
// game commands.
func GameKeyboard() *Keyboard {
	return &Keyboard{
		Resize: true,
		Rows: [][]Button{
			{{Text: "/статус"}, {Text: "/инвентарь"}},
			{{Text: "/заклинания"}, {Text: "/торговля"}},
			{{Text: "/отдых"}},
		},
	}
}
