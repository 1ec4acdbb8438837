package content

import (
	"strings"
	"unicode"
)

// MessageRotation hands out hidden messages round-robin
type MessageRotation struct {
	messages []string
	index    int
}

// NewMessageRotation sanitizes the given messages and starts at the first one.
// Messages that are empty after sanitizing are skipped; if none survive, the
// default message is used
func NewMessageRotation(messages []string) *MessageRotation {
	processed := make([]string, 0, len(messages))
	for _, msg := range messages {
		if clean := SanitizeMessage(msg); clean != "" {
			processed = append(processed, clean)
		}
	}
	if len(processed) == 0 {
		processed = append(processed, defaultMessage)
	}
	return &MessageRotation{messages: processed}
}

const defaultMessage = "SYSTEM ONLINE"

// Current returns the active message index and text
func (r *MessageRotation) Current() (int, string) {
	return r.index, r.messages[r.index]
}

// Next advances to (index+1) mod len and returns the new index and text
func (r *MessageRotation) Next() (int, string) {
	r.index = (r.index + 1) % len(r.messages)
	return r.Current()
}

// Len returns the number of messages in rotation
func (r *MessageRotation) Len() int {
	return len(r.messages)
}

// SanitizeMessage strips ANSI escape sequences and control characters and trims
// surrounding whitespace, so every remaining rune occupies one grid cell
func SanitizeMessage(msg string) string {
	var b strings.Builder
	b.Grow(len(msg))

	runes := []rune(msg)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		// CSI sequence: ESC [ params final
		if r == '\x1b' {
			if i+1 < len(runes) && runes[i+1] == '[' {
				i += 2
				for i < len(runes) && !(runes[i] >= 0x40 && runes[i] <= 0x7E) {
					i++
				}
			}
			continue
		}
		if r == '\t' {
			b.WriteRune(' ')
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}
