// Package llm provides LLM provider integration for the adventure bot
package llm

import (
	"context"
	"fmt"

	"dnd-quest-bot/store"
)

// Role identifies the author of a chat message. A closed enum keeps
// malformed role tags out of the history by construction.
type Role int

const (
	RoleSystem Role = iota
	RoleUser
	RoleAssistant
)

// String returns the wire name used by chat completion APIs.
func (r Role) String() string {
	switch r {
	case RoleSystem:
		return "system"
	case RoleAssistant:
		return "assistant"
	default:
		return "user"
	}
}

// Message is a single turn of model context.
type Message struct {
	Role    Role
	Content string
}

// Provider определяет интерфейс генерации ответов Game Master
//
// Системный промпт вызывающая сторона не передаёт: провайдер сам
// перечитывает общее хранилище промпта непосредственно перед каждым
// вызовом, поэтому обновление хранилища действует со следующего хода.
type Provider interface {
	// Generate отправляет историю диалога и возвращает полный ответ модели
	Generate(ctx context.Context, history []Message) (string, error)

	// Close закрывает соединения и освобождает ресурсы провайдера
	Close() error
}

// ProviderConfig хранит конфигурацию для LLM провайдеров
type ProviderConfig struct {
	Name        string  // Имя провайдера (yandex, openai, custom)
	APIKey      string  // API ключ провайдера
	BaseURL     string  // Базовый URL API провайдера
	Model       string  // Модель для OpenAI-совместимых API
	ModelURI    string  // modelUri для Yandex GPT (gpt://<folder-id>/<model>)
	Temperature float64 // Температура генерации
	MaxTokens   int     // Максимальное количество токенов ответа
}

// NewProviderFromConfig creates a Provider from ProviderConfig.
// Every provider reads the system prompt from the given store.
func NewProviderFromConfig(cfg *ProviderConfig, prompts store.PromptStore) (Provider, error) {
	switch cfg.Name {
	case "yandex":
		return NewYandexProvider(cfg, prompts)
	case "openai", "custom":
		return NewOpenAIProvider(cfg, prompts)
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
