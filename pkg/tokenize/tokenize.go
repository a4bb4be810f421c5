// Package tokenize splits normalized text into alphabetic word tokens.
package tokenize

import "regexp"

// wordPattern matches maximal runs of ASCII letters. Digits, punctuation
// and symbols separate tokens and are never part of one.
var wordPattern = regexp.MustCompile(`[A-Za-z]+`)

// Words returns the alphabetic tokens of text in left-to-right order,
// case preserved. The result is a concrete slice, so callers can iterate
// it as often as they like.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}
