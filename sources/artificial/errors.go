package artificial

import "fmt"

// TranscriptTooShortError rejects a transcript below the minimum word
// count for the requested operation. Never retried.
type TranscriptTooShortError struct {
	Verb  string
	Words int
}

func (e *TranscriptTooShortError) Error() string {
	return fmt.Sprintf("Transcript too short to %s. (%d words in transcript)", e.Verb, e.Words)
}

// TranscriptTooLongError rejects a transcript whose estimated token
// count exceeds the ceiling of every usable tier. Never retried.
type TranscriptTooLongError struct {
	Verb   string
	Tokens int
}

func (e *TranscriptTooLongError) Error() string {
	return fmt.Sprintf("Transcript too long to %s. (%d tokens)", e.Verb, e.Tokens)
}

// IsValidation reports whether err means the requester's input was
// unsuitable, as opposed to an upstream service having trouble.
func IsValidation(err error) bool {
	switch err.(type) {
	case *TranscriptTooShortError, *TranscriptTooLongError:
		return true
	default:
		return false
	}
}
