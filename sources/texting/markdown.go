package texting

import (
	"strings"
)

// EscapeMarkdown escapes Telegram MarkdownV2 special characters while
// leaving * and _ alone so model-produced emphasis survives.
func EscapeMarkdown(input string) string {
	var str strings.Builder
	escapable := "[]()~`>#+-=|{}.!\\"
	for _, char := range input {
		if strings.ContainsRune(escapable, char) {
			str.WriteRune('\\')
		}
		str.WriteRune(char)
	}
	return str.String()
}
