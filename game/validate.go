package game

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxTokenLength bounds a single whitespace-delimited token; anything
// longer is almost certainly pasted garbage with missing spaces.
const maxTokenLength = 100

// ValidateText checks free-form player input before it may enter the
// prompt context. It returns the trimmed text, or an error whose
// message is shown to the player as-is. Checks run in order and the
// first failure wins.
//
// This is the only defense against markup-breaking input reaching the
// renderer or the model, so it must run before any free-text field
// (name, personality, appearance, custom action) is accepted.
func ValidateText(text string, minLen, maxLen int) (string, error) {
	text = strings.TrimSpace(text)
	length := utf8.RuneCountInString(text)

	if length == 0 {
		return "", fmt.Errorf("❌ Пустой ввод. Минимум %d символов.", minLen)
	}
	if length < minLen {
		return "", fmt.Errorf("❌ Слишком короткий текст. Минимум %d символов (сейчас %d).", minLen, length)
	}
	if length > maxLen {
		return "", fmt.Errorf("❌ Слишком длинный текст. Максимум %d символов (сейчас %d).", maxLen, length)
	}
	if strings.ContainsAny(text, "<>{}") {
		return "", fmt.Errorf("❌ Текст содержит недопустимые символы.")
	}
	for _, token := range strings.Fields(text) {
		if utf8.RuneCountInString(token) > maxTokenLength {
			return "", fmt.Errorf("❌ Подозрительный ввод. Проверьте, не пропущены ли пробелы.")
		}
	}

	return text, nil
}
