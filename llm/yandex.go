// Package llm provides Yandex GPT provider implementation
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"dnd-quest-bot/store"
)

const yandexAPIURL = "https://llm.api.cloud.yandex.net/foundationModels/v1/completion"

// YandexProvider implements Provider for the Yandex GPT foundation
// models API.
type YandexProvider struct {
	client  *http.Client
	config  *ProviderConfig
	prompts store.PromptStore
	apiURL  string
}

// NewYandexProvider creates a new Yandex GPT provider instance.
func NewYandexProvider(cfg *ProviderConfig, prompts store.PromptStore) (*YandexProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("YANDEX_API_KEY is required")
	}
	if cfg.ModelURI == "" {
		return nil, fmt.Errorf("YANDEX_MODEL_URI is required")
	}

	apiURL := yandexAPIURL
	if cfg.BaseURL != "" {
		apiURL = cfg.BaseURL
	}

	return &YandexProvider{
		client:  &http.Client{},
		config:  cfg,
		prompts: prompts,
		apiURL:  apiURL,
	}, nil
}

// Generate sends the conversation to Yandex GPT and returns the reply.
// The system prompt is re-read from the prompt store on every call.
func (p *YandexProvider) Generate(ctx context.Context, history []Message) (string, error) {
	systemPrompt, err := p.prompts.Read(ctx)
	if err != nil {
		log.Printf("[LLM] Prompt store read failed, generating without system prompt: %v", err)
		systemPrompt = ""
	}

	reqBody := yandexRequest{
		ModelURI: p.config.ModelURI,
		CompletionOptions: yandexCompletionOptions{
			Stream:      false,
			Temperature: p.temperature(),
			MaxTokens:   fmt.Sprintf("%d", p.maxTokens()),
		},
		Messages: toYandexMessages(history, systemPrompt),
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal Yandex GPT request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create Yandex GPT request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Api-Key "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Yandex GPT request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[LLM] Yandex GPT error: status=%d modelUri=%s body=%s", resp.StatusCode, p.config.ModelURI, string(body))
		return "", &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	var result yandexResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode Yandex GPT response: %w", err)
	}

	if len(result.Result.Alternatives) == 0 {
		return "", fmt.Errorf("Yandex GPT returned empty response")
	}

	return result.Result.Alternatives[0].Message.Text, nil
}

// Close closes the provider connection.
func (p *YandexProvider) Close() error {
	return nil
}

func (p *YandexProvider) temperature() float64 {
	if p.config.Temperature > 0 {
		return p.config.Temperature
	}
	return 0.6
}

func (p *YandexProvider) maxTokens() int {
	if p.config.MaxTokens > 0 {
		return p.config.MaxTokens
	}
	return 2000
}

// toYandexMessages converts history to the Yandex GPT wire format,
// which uses "text" instead of "content", prepending the system prompt.
func toYandexMessages(history []Message, systemPrompt string) []yandexMessage {
	messages := make([]yandexMessage, 0, len(history)+1)
	if systemPrompt != "" {
		messages = append(messages, yandexMessage{Role: RoleSystem.String(), Text: systemPrompt})
	}
	for _, msg := range history {
		messages = append(messages, yandexMessage{Role: msg.Role.String(), Text: msg.Content})
	}
	return messages
}

// yandexRequest represents the request payload for the Yandex GPT API
type yandexRequest struct {
	ModelURI          string                  `json:"modelUri"`
	CompletionOptions yandexCompletionOptions `json:"completionOptions"`
	Messages          []yandexMessage         `json:"messages"`
}

type yandexCompletionOptions struct {
	Stream      bool    `json:"stream"`
	Temperature float64 `json:"temperature"`
	MaxTokens   string  `json:"maxTokens"`
}

type yandexMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// yandexResponse represents the response from the Yandex GPT API
type yandexResponse struct {
	Result struct {
		Alternatives []struct {
			Message yandexMessage `json:"message"`
		} `json:"alternatives"`
	} `json:"result"`
}

var _ Provider = (*YandexProvider)(nil)
