package texting

import (
	"strings"
)

// ParseCmdArgs splits a command tail into argv-style tokens. Single
// quotes group words, backslash escapes a quote or another backslash.
func ParseCmdArgs(args string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false
	escaped := false

	for i := 0; i < len(args); i++ {
		ch := args[i]

		switch {
		case escaped:
			if ch != '\'' && ch != '\\' {
				current.WriteByte('\\')
			}
			current.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '\'':
			inQuotes = !inQuotes
		case ch == ' ' && !inQuotes:
			if current.Len() > 0 {
				result = append(result, current.String())
				current.Reset()
			}
		default:
			current.WriteByte(ch)
		}
	}

	if current.Len() > 0 {
		result = append(result, current.String())
	}

	return result
}
