package game

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// FirstSceneText is the default opening scene body.
const FirstSceneText = "Вы стоите на пыльной дороге у трактира «Последний привал». В воздухе пахнет дымом и жареным кабаном. Из дверей доносится хриплый смех."

// SceneTemplate renders the opening scene from a text template with
// named placeholders: {char_name}, {char_race}, {char_class},
// {char_background}, the six ability abbreviations ({str}..{cha}),
// {armor}, {weapon}, {coins} and {scene_text}.
type SceneTemplate struct {
	text string
}

// LoadSceneTemplate reads a scene template file. A missing or unreadable
// file degrades to a trivial template that renders the scene body alone
// rather than failing the turn.
func LoadSceneTemplate(path string) *SceneTemplate {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[SCENE] Template %s unavailable, using fallback: %v", path, err)
		return &SceneTemplate{text: "{scene_text}"}
	}
	return &SceneTemplate{text: string(data)}
}

// NewSceneTemplate wraps raw template text.
func NewSceneTemplate(text string) *SceneTemplate {
	if strings.TrimSpace(text) == "" {
		text = "{scene_text}"
	}
	return &SceneTemplate{text: text}
}

// Render substitutes the character data into the template. Placeholders
// the template does not use are simply ignored; placeholders without a
// known key stay in place.
func (t *SceneTemplate) Render(char *Character, sceneText string) string {
	replacer := strings.NewReplacer(
		"{char_name}", char.Name,
		"{char_race}", char.Race,
		"{char_class}", char.Class,
		"{char_background}", char.Background,
		"{str}", fmt.Sprintf("%d", char.Stats["Сила"]),
		"{dex}", fmt.Sprintf("%d", char.Stats["Ловкость"]),
		"{con}", fmt.Sprintf("%d", char.Stats["Телосложение"]),
		"{int}", fmt.Sprintf("%d", char.Stats["Интеллект"]),
		"{wis}", fmt.Sprintf("%d", char.Stats["Мудрость"]),
		"{cha}", fmt.Sprintf("%d", char.Stats["Харизма"]),
		"{armor}", char.Equipment,
		"{weapon}", "Основное оружие",
		"{coins}", fmt.Sprintf("%d", char.Coins),
		"{scene_text}", sceneText,
	)
	return replacer.Replace(t.text)
}
