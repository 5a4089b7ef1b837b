package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandName(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"/start", "start"},
		{"/start@QuestBot", "start"},
		{"/СТАТУС", "статус"},
		{"/отдых ", "отдых"},
		{"  /help", "help"},
		{"статус", ""},
		{"1", ""},
		{"/", ""},
		{"просто текст", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, commandName(tc.text, "QuestBot"), "input %q", tc.text)
	}
}
