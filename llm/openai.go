// Package llm provides OpenAI-compatible LLM provider implementation
package llm

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"dnd-quest-bot/store"
)

// OpenAIProvider implements Provider for OpenAI-compatible APIs.
type OpenAIProvider struct {
	client  *openai.Client
	config  *ProviderConfig
	prompts store.PromptStore
}

// NewOpenAIProvider creates a new OpenAI-compatible provider instance.
func NewOpenAIProvider(cfg *ProviderConfig, prompts store.PromptStore) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required for OpenAI provider")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client:  openai.NewClientWithConfig(clientConfig),
		config:  cfg,
		prompts: prompts,
	}, nil
}

// Generate sends the conversation and returns the reply. The system
// prompt is re-read from the prompt store on every call.
func (p *OpenAIProvider) Generate(ctx context.Context, history []Message) (string, error) {
	systemPrompt, err := p.prompts.Read(ctx)
	if err != nil {
		log.Printf("[LLM] Prompt store read failed, generating without system prompt: %v", err)
		systemPrompt = ""
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role.String(),
			Content: msg.Content,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:       p.model(),
		Messages:    messages,
		MaxTokens:   p.maxTokens(),
		Temperature: float32(p.temperature()),
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if apiErr, ok := err.(*openai.APIError); ok {
			return "", &APIError{Status: apiErr.HTTPStatusCode, Body: apiErr.Message}
		}
		return "", fmt.Errorf("OpenAI request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

// Close closes the provider connection.
func (p *OpenAIProvider) Close() error {
	return nil
}

func (p *OpenAIProvider) model() string {
	if p.config.Model != "" {
		return p.config.Model
	}
	return "gpt-4o"
}

func (p *OpenAIProvider) maxTokens() int {
	if p.config.MaxTokens > 0 {
		return p.config.MaxTokens
	}
	return 2000
}

func (p *OpenAIProvider) temperature() float64 {
	if p.config.Temperature > 0 {
		return p.config.Temperature
	}
	return 0.6
}

var _ Provider = (*OpenAIProvider)(nil)
