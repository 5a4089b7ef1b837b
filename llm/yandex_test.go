package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnd-quest-bot/store"
)

func newYandexTestProvider(t *testing.T, handler http.HandlerFunc, prompt string) *YandexProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	prompts := store.NewMemoryPromptStore()
	require.NoError(t, prompts.Write(context.Background(), prompt))

	p, err := NewYandexProvider(&ProviderConfig{
		Name:     "yandex",
		APIKey:   "test-key",
		ModelURI: "gpt://folder/model/latest",
		BaseURL:  srv.URL,
	}, prompts)
	require.NoError(t, err)
	return p
}

func TestYandexGenerate(t *testing.T) {
	var captured yandexRequest

	p := newYandexTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Api-Key test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		resp := map[string]any{
			"result": map[string]any{
				"alternatives": []map[string]any{
					{"message": map[string]any{"role": "assistant", "text": "Вы входите в таверну."}},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}, "системный промпт")

	history := []Message{
		{Role: RoleUser, Content: "Осматриваюсь"},
	}

	got, err := p.Generate(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, "Вы входите в таверну.", got)

	// The prompt store value must arrive as the leading system message.
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "системный промпт", captured.Messages[0].Text)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "gpt://folder/model/latest", captured.ModelURI)
}

func TestYandexGenerateWithoutPrompt(t *testing.T) {
	var captured yandexRequest

	p := newYandexTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{
				"alternatives": []map[string]any{
					{"message": map[string]any{"role": "assistant", "text": "ок"}},
				},
			},
		})
	}, "")

	_, err := p.Generate(context.Background(), []Message{{Role: RoleUser, Content: "привет"}})
	require.NoError(t, err)

	require.Len(t, captured.Messages, 1, "empty store must not produce a system message")
	assert.Equal(t, "user", captured.Messages[0].Role)
}

func TestYandexGenerateAPIError(t *testing.T) {
	p := newYandexTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}, "промпт")

	_, err := p.Generate(context.Background(), []Message{{Role: RoleUser, Content: "привет"}})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestYandexGenerateEmptyAlternatives(t *testing.T) {
	p := newYandexTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"result": map[string]any{"alternatives": []any{}}})
	}, "промпт")

	_, err := p.Generate(context.Background(), []Message{{Role: RoleUser, Content: "привет"}})
	assert.Error(t, err)
}

func TestNewYandexProviderValidation(t *testing.T) {
	prompts := store.NewMemoryPromptStore()

	_, err := NewYandexProvider(&ProviderConfig{ModelURI: "gpt://x/y"}, prompts)
	assert.Error(t, err, "missing API key")

	_, err = NewYandexProvider(&ProviderConfig{APIKey: "k"}, prompts)
	assert.Error(t, err, "missing model URI")
}

func TestNewProviderFromConfigUnknown(t *testing.T) {
	_, err := NewProviderFromConfig(&ProviderConfig{Name: "minimax"}, store.NewMemoryPromptStore())
	assert.Error(t, err)
}
