// Package llm provides error classification for provider failures
package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// APIError is an HTTP-level failure returned by a provider backend.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d - %s", e.Status, e.Body)
}

// UserMessage maps a generation failure to a short Russian explanation
// shown to the player. Raw internal detail stays in the logs.
func UserMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "⚠️ <b>Превышено время ожидания</b>\n\n🔴 Сервис генерации не ответил вовремя.\n\n<i>Попробуйте снова через несколько секунд.</i>"
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == 401:
			return "⚠️ <b>Ошибка аутентификации</b>\n\n🔴 Неверный или недействительный API ключ.\n\n<i>Обратитесь к администратору бота.</i>"
		case apiErr.Status == 403:
			return "⚠️ <b>Доступ запрещён</b>\n\n🔴 У ключа нет доступа к модели. Проверьте роль сервисного аккаунта и платёжный аккаунт.\n\n<i>Обратитесь к администратору бота.</i>"
		case apiErr.Status == 429:
			return "⚠️ <b>Превышен лимит запросов</b>\n\n🔴 Слишком много запросов к API.\n\n<i>Подождите немного и попробуйте снова.</i>"
		case apiErr.Status >= 500:
			return "⚠️ <b>Сервис временно недоступен</b>\n\n🔴 Сервер генерации не отвечает.\n\n<i>Попробуйте снова через несколько минут.</i>"
		default:
			return fmt.Sprintf("⚠️ <b>Ошибка при обращении к модели</b>\n\nКод ошибки: %d\n\n<i>Попробуйте снова чуть позже.</i>", apiErr.Status)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return "⚠️ <b>Ошибка сети</b>\n\n🔴 Не удалось подключиться к серверу генерации.\n\n<i>Проверьте подключение к интернету и попробуйте снова.</i>"
	}

	return "⚠️ <b>Внутренняя ошибка</b>\n\nПроизошла непредвиденная ошибка при генерации.\n\n<i>Попробуйте снова. Если проблема сохраняется, обратитесь к администратору.</i>"
}
