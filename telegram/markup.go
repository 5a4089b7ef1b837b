// Package telegram is the Telegram transport: polling, dispatch and
// outbound rendering for the game engine.
package telegram

import (
	"fmt"
	"regexp"
	"strings"
)

// The model writes a small Markdown dialect; Telegram wants HTML. The
// converter runs on every outbound narrative message, never on history.

var (
	htmlTagPattern  = regexp.MustCompile(`<[^<>]+>`)
	ampersandOrEnt  = regexp.MustCompile(`&(amp;|lt;|gt;|quot;|#[0-9]+;)?`)
	boldPattern     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	bulletPattern   = regexp.MustCompile(`(?m)^([ \t]*)- `)
	placeholderByte = "\x00"
)

// ToChatMarkup converts the model's Markdown subset to Telegram HTML.
// Tags already present in the text survive unchanged, so the converter
// is idempotent: running it on its own output is a no-op.
func ToChatMarkup(text string) string {
	// Existing tags are parked behind placeholders so the substitution
	// passes cannot mangle them.
	var tags []string
	text = htmlTagPattern.ReplaceAllStringFunc(text, func(tag string) string {
		tags = append(tags, tag)
		return fmt.Sprintf("%s%d%s", placeholderByte, len(tags)-1, placeholderByte)
	})

	// Bare ampersands get escaped; existing entities pass through so a
	// second run does not produce &amp;amp;.
	text = ampersandOrEnt.ReplaceAllStringFunc(text, func(m string) string {
		if m == "&" {
			return "&amp;"
		}
		return m
	})

	text = boldPattern.ReplaceAllString(text, "<b>$1</b>")
	text = convertItalics(text)
	text = bulletPattern.ReplaceAllString(text, "$1• ")

	for i, tag := range tags {
		placeholder := fmt.Sprintf("%s%d%s", placeholderByte, i, placeholderByte)
		text = strings.Replace(text, placeholder, tag, 1)
	}
	return text
}

// convertItalics wraps single-asterisk spans in <i> tags. A hand-rolled
// scan instead of a regexp: RE2 has no lookaround, and a match must not
// touch an asterisk on either side or it would eat pieces of a bold
// span. Unmatched delimiters stay as they are.
func convertItalics(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		if s[i] != '*' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if (i > 0 && s[i-1] == '*') || (i+1 < len(s) && s[i+1] == '*') {
			b.WriteByte('*')
			i++
			continue
		}
		rest := strings.IndexByte(s[i+1:], '*')
		if rest < 0 {
			b.WriteByte('*')
			i++
			continue
		}
		end := i + 1 + rest
		if end+1 < len(s) && s[end+1] == '*' {
			b.WriteByte('*')
			i++
			continue
		}
		b.WriteString("<i>")
		b.WriteString(s[i+1 : end])
		b.WriteString("</i>")
		i = end + 1
	}
	return b.String()
}
