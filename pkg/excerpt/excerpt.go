// Package excerpt locates a supporting sentence for a word in the
// source text.
package excerpt

import (
	"regexp"
	"strings"
)

// DefaultMaxLen is the longest example sentence shown or stored.
const DefaultMaxLen = 220

// Sentence returns the first sentence-like span of text containing word
// as a whole word, case-insensitively. Spans are bounded by sentence
// punctuation (. ? !) or by the start and end of the text. The result is
// trimmed and, when longer than maxLen characters, truncated to
// maxLen-3 with an ellipsis appended; a maxLen too small to hold the
// ellipsis truncates to maxLen without one. maxLen <= 0 means
// DefaultMaxLen. The second return value is false when no span contains
// the word.
func Sentence(text, word string, maxLen int) (string, bool) {
	if word == "" {
		return "", false
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}

	pattern := regexp.MustCompile(`(?i)[^.?!]*\b` + regexp.QuoteMeta(word) + `\b[^.?!]*[.?!]?`)
	match := pattern.FindString(text)
	if match == "" {
		return "", false
	}

	sentence := strings.TrimSpace(match)
	if sentence == "" {
		return "", false
	}

	runes := []rune(sentence)
	if len(runes) > maxLen {
		if maxLen <= 3 {
			sentence = string(runes[:maxLen])
		} else {
			sentence = string(runes[:maxLen-3]) + "..."
		}
	}
	return sentence, true
}
