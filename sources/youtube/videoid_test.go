package youtube

import (
	"reflect"
	"testing"
)

func TestVideoID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		ok       bool
	}{
		{
			name:     "Watch URL",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
			ok:       true,
		},
		{
			name:     "Watch URL without www",
			url:      "https://youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
			ok:       true,
		},
		{
			name:     "Short URL",
			url:      "https://youtu.be/abc-DEF_123",
			expected: "abc-DEF_123",
			ok:       true,
		},
		{
			name:     "Shorts URL",
			url:      "https://www.youtube.com/shorts/xyz987",
			expected: "xyz987",
			ok:       true,
		},
		{
			name:     "Watch URL with extra params",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			expected: "dQw4w9WgXcQ",
			ok:       true,
		},
		{
			name: "Unrelated URL",
			url:  "https://example.com/watch?v=nope",
			ok:   false,
		},
		{
			name: "Plain text",
			url:  "just words",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := VideoID(tt.url)
			if ok != tt.ok {
				t.Fatalf("VideoID() ok = %v, expected %v", ok, tt.ok)
			}
			if id != tt.expected {
				t.Errorf("VideoID() = %q, expected %q", id, tt.expected)
			}
		})
	}
}

func TestVideoIDs(t *testing.T) {
	text := "check https://youtu.be/first and https://www.youtube.com/watch?v=second too"

	got := VideoIDs(text)
	expected := []string{"first", "second"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("VideoIDs() = %v, expected %v", got, expected)
	}

	if got := VideoIDs("no links here"); got != nil {
		t.Errorf("VideoIDs() = %v, expected nil", got)
	}
}
