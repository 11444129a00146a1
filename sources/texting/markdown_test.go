package texting

import (
	"testing"
)

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain text untouched",
			input:    "Hello world",
			expected: "Hello world",
		},
		{
			name:     "Special characters escaped",
			input:    "Test[]()>#+-={}.!",
			expected: "Test\\[\\]\\(\\)\\>\\#\\+\\-\\=\\{\\}\\.\\!",
		},
		{
			name:     "Emphasis markers survive",
			input:    "The **key point** is _this_",
			expected: "The **key point** is _this_",
		},
		{
			name:     "Mixed content",
			input:    "**Bold.** Then (aside)",
			expected: "**Bold\\.** Then \\(aside\\)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EscapeMarkdown(tt.input)
			if result != tt.expected {
				t.Errorf("EscapeMarkdown() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestReparagraph(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Sentences become paragraphs",
			input:    "First sentence. Second sentence.",
			expected: "First sentence.\n\nSecond sentence.",
		},
		{
			name:     "Trailing period untouched",
			input:    "Only one.",
			expected: "Only one.",
		},
		{
			name:     "Abbreviations break too",
			input:    "The U.S. economy grew.",
			expected: "The U.\n\nS.\n\neconomy grew.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reparagraph(tt.input)
			if result != tt.expected {
				t.Errorf("Reparagraph() = %q, expected %q", result, tt.expected)
			}
		})
	}
}
