// Package candidate decides which document words are worth reviewing
// and in what order.
package candidate

import (
	"strings"
	"unicode"

	"github.com/wordkeep/vocabmine/pkg/lexicon"
	"github.com/wordkeep/vocabmine/pkg/store"
)

const (
	// MinZipf is the lower frequency bound. Anything rarer is almost
	// certainly an extraction artifact rather than a word worth learning.
	MinZipf = 1.5
	// DefaultMaxZipf is the default upper frequency bound; words more
	// common than this are too easy to be interesting.
	DefaultMaxZipf = 3.5
)

// IsCandidate reports whether word should be offered for review. The
// checks short-circuit in a fixed order and have no side effects:
//
//  1. four letters minimum
//  2. not already in the personal dictionary
//  3. not all-uppercase (acronym heuristic, judged on the given form)
//  4. has a dictionary sense
//  5. attested at all (Zipf > 0)
//  6. Zipf within [MinZipf, maxZipf]
func IsCandidate(word string, known store.Dictionary, lex lexicon.Lexicon, maxZipf float64) bool {
	w := strings.ToLower(word)

	if len(w) <= 3 {
		return false
	}
	if _, ok := known[w]; ok {
		return false
	}
	if allUpper(word) {
		return false
	}
	if !lex.HasSense(w) {
		return false
	}
	z := lex.Zipf(w)
	if z == 0 {
		return false
	}
	if z < MinZipf || z > maxZipf {
		return false
	}
	return true
}

func allUpper(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
