// Package textnorm repairs artifacts that page-based text extraction
// leaves behind, so the tokenizer sees whole words and the sentence
// scanner sees the original line structure.
package textnorm

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Step is a single normalization pass over the text.
type Step func(string) string

// Normalizer applies a pipeline of normalization steps in order.
type Normalizer struct {
	steps []Step
}

var (
	// A word fragment split across a line break by a trailing hyphen,
	// e.g. "well-\nknown". The break and the hyphen are both artifacts.
	// Explicit Unicode classes, because \w is ASCII-only here and the
	// fragments can carry accented letters.
	hyphenBreak = regexp.MustCompile(`([\p{L}\p{N}_]+)-\s*\n\s*([\p{L}\p{N}_]+)`)

	// Runs of horizontal whitespace. Newlines stay untouched so sentence
	// and page boundaries survive.
	horizontalRuns = regexp.MustCompile(`[ \t]{2,}`)
)

// New returns a normalizer with the default pipeline: NFC composition,
// hyphenated line-break joining, and horizontal whitespace collapsing.
func New() *Normalizer {
	return &Normalizer{
		steps: []Step{
			norm.NFC.String,
			joinHyphenBreaks,
			collapseHorizontal,
		},
	}
}

// NewWithSteps returns a normalizer running the given steps in order.
func NewWithSteps(steps ...Step) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize runs the full pipeline over raw extracted text. Empty input
// yields empty output.
func (n *Normalizer) Normalize(raw string) string {
	out := raw
	for _, step := range n.steps {
		out = step(out)
	}
	return out
}

// Normalize runs the default pipeline. Idempotent: a second pass finds
// no remaining hyphen joins or whitespace runs.
func Normalize(raw string) string {
	return New().Normalize(raw)
}

// joinHyphenBreaks rewrites "frag-\nment" to "fragment". Replacement is
// repeated until stable because a join can expose a new trailing-hyphen
// pattern when consecutive lines all end in hyphens.
func joinHyphenBreaks(s string) string {
	for {
		joined := hyphenBreak.ReplaceAllString(s, "$1$2")
		if joined == s {
			return joined
		}
		s = joined
	}
}

func collapseHorizontal(s string) string {
	return horizontalRuns.ReplaceAllString(s, " ")
}
