package texting

import "strings"

// Reparagraph inserts a paragraph break after every sentence-ending
// period-space sequence. This is a readability heuristic, not sentence
// detection: abbreviations like "U.S. " break too.
func Reparagraph(text string) string {
	return strings.ReplaceAll(text, ". ", ".\n\n")
}

// Words splits on single spaces, matching the word-count rules used for
// transcript validation and partitioning.
func Words(text string) []string {
	return strings.Split(text, " ")
}
