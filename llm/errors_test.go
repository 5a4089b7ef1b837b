package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessageCategories(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"timeout", context.DeadlineExceeded, "Превышено время ожидания"},
		{"wrapped timeout", fmt.Errorf("generate: %w", context.DeadlineExceeded), "Превышено время ожидания"},
		{"auth", &APIError{Status: 401}, "Ошибка аутентификации"},
		{"forbidden", &APIError{Status: 403}, "Доступ запрещён"},
		{"rate limit", &APIError{Status: 429}, "Превышен лимит запросов"},
		{"server", &APIError{Status: 503}, "Сервис временно недоступен"},
		{"other status", &APIError{Status: 418}, "Код ошибки: 418"},
		{"unknown", errors.New("boom"), "Внутренняя ошибка"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, UserMessage(tt.err), tt.want)
		})
	}
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "system", RoleSystem.String())
	assert.Equal(t, "user", RoleUser.String())
	assert.Equal(t, "assistant", RoleAssistant.String())
}
