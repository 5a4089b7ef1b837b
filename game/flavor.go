package game

import (
	"math/rand"
	"sync"
)

var thinkingMessages = []string{
	"🔮 <i>Магический шар показывает варианты...</i>",
	"📖 <i>Листаю древние манускрипты...</i>",
	"🎲 <i>Бросок костей судьбы...</i>",
	"⚡ <i>Наполняюсь магической энергией...</i>",
	"🌌 <i>Советуюсь со звёздами...</i>",
	"🐉 <i>Слушаю мудрость драконов...</i>",
	"🌀 <i>Проникаю в пустоту разума...</i>",
	"✨ <i>Собираю магические частицы...</i>",
	"🔍 <i>Ищу ответ в хрониках веков...</i>",
	"💭 <i>Погружаюсь в глубокие размышления...</i>",
	"🌟 <i>Призываю силу древних артефактов...</i>",
}

var waitingMessages = []string{
	"⚙️ <i>Подожди, идёт обработка запроса...</i>",
	"⏳ <i>Магия ещё не готова, подожди немного...</i>",
	"🔮 <i>Кристалл всё ещё показывает видения...</i>",
	"📜 <i>Древние свитки разворачиваются...</i>",
	"🌀 <i>Портал между мирами стабилизируется...</i>",
	"⚔️ <i>Совет мудрецов обдумывает твой вопрос...</i>",
	"🌠 <i>Звёзды ещё не сошлись для ответа...</i>",
	"🐲 <i>Дракон размышляет над твоими словами...</i>",
	"✨ <i>Магическая энергия накапливается...</i>",
	"🔍 <i>Поиск ответа в летописях продолжается...</i>",
	"💫 <i>Силы магии всё ещё работают...</i>",
	"🛡️ <i>Хранители знаний проверяют информацию...</i>",
}

// FlavorPicker selects the rotating "thinking" and "please wait"
// notices. It is injected into the engine instead of inline randomness
// so scenario tests can seed it and assert deterministic output.
type FlavorPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewFlavorPicker creates a picker from a random source.
func NewFlavorPicker(src rand.Source) *FlavorPicker {
	return &FlavorPicker{rnd: rand.New(src)}
}

// Thinking returns a notice sent right before a generation call.
func (f *FlavorPicker) Thinking() string {
	return f.pick(thinkingMessages)
}

// Waiting returns a notice for input that arrives while a generation
// call is pending.
func (f *FlavorPicker) Waiting() string {
	return f.pick(waitingMessages)
}

func (f *FlavorPicker) pick(list []string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return list[f.rnd.Intn(len(list))]
}
