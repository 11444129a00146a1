package texting

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var newlineRuns = regexp.MustCompile(`\n{3,}`)

// BreakIntoChunks splits text into chunks of at most maxChars characters,
// keeping paragraphs together where possible. Paragraphs longer than the
// budget degrade to word-level splitting instead of being truncated. A
// single word longer than the budget overflows its chunk; callers accept
// that. Empty input yields one empty chunk.
func BreakIntoChunks(text string, maxChars int) []string {
	var fragments []string

	for i, line := range strings.Split(text, "\n") {
		paragraph := strings.TrimSpace(line)

		if i > 0 {
			fragments = append(fragments, "\n\n")
		}

		if utf8.RuneCountInString(paragraph) <= maxChars {
			fragments = append(fragments, paragraph)
			continue
		}

		for j, word := range strings.Split(paragraph, " ") {
			if j > 0 {
				word = " " + word
			}
			fragments = append(fragments, word)
		}
	}

	var chunks []string
	var current strings.Builder
	length := 0

	for _, fragment := range fragments {
		size := utf8.RuneCountInString(fragment)

		if length > 0 && length+size > maxChars {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
			length = 0

			fragment = strings.TrimLeft(fragment, " ")
			size = utf8.RuneCountInString(fragment)
		}

		current.WriteString(fragment)
		length += size
	}
	chunks = append(chunks, strings.TrimSpace(current.String()))

	for i, chunk := range chunks {
		chunks[i] = newlineRuns.ReplaceAllString(chunk, "\n\n")
	}

	return chunks
}
