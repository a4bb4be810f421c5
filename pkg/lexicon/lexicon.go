// Package lexicon answers the three linguistic questions the mining
// pipeline asks about a word: is it a real English word, what does it
// mean, and how common is it in general usage.
package lexicon

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/kljensen/snowball"
)

// Lexicon is the capability interface the filter, ranker and review
// session depend on. Implementations must be safe for repeated lookups
// of the same word.
type Lexicon interface {
	// HasSense reports whether the word has at least one dictionary sense.
	HasSense(word string) bool
	// FirstGloss returns the gloss of the word's first sense, or false
	// when the word has no entry.
	FirstGloss(word string) (string, bool)
	// Zipf returns the word's Zipf-scale frequency. 0 means the word is
	// completely unattested; higher means more common.
	Zipf(word string) float64
}

// SQLLexicon serves lookups from a SQLite lexicon database built by the
// importer. Sense lookups fall back from the surface form to its lemma
// and then its stem, which mirrors how dictionary databases resolve
// inflected forms. Frequencies are exact-form only.
type SQLLexicon struct {
	conn       *sql.DB
	lemmatizer *golem.Lemmatizer
}

// NewSQLLexicon wraps an open lexicon database connection.
func NewSQLLexicon(conn *sql.DB) (*SQLLexicon, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemmatizer: %w", err)
	}
	return &SQLLexicon{conn: conn, lemmatizer: lem}, nil
}

// lookupForms returns the candidate dictionary headwords for a word, in
// priority order: the lowercase form itself, its lemma, its stem.
func (l *SQLLexicon) lookupForms(word string) []string {
	w := strings.ToLower(word)
	forms := []string{w}

	if lemma := strings.ToLower(l.lemmatizer.Lemma(w)); lemma != "" && lemma != w {
		forms = append(forms, lemma)
	}
	if stem, err := snowball.Stem(w, "english", false); err == nil && stem != "" {
		seen := false
		for _, f := range forms {
			if f == stem {
				seen = true
				break
			}
		}
		if !seen {
			forms = append(forms, stem)
		}
	}
	return forms
}

// HasSense reports whether any lookup form of word has a sense row.
func (l *SQLLexicon) HasSense(word string) bool {
	for _, form := range l.lookupForms(word) {
		var one int
		err := l.conn.QueryRow(`SELECT 1 FROM senses WHERE word = ? LIMIT 1`, form).Scan(&one)
		if err == nil {
			return true
		}
		if err != sql.ErrNoRows {
			return false
		}
	}
	return false
}

// FirstGloss returns the first-sense gloss for the best-matching lookup
// form of word.
func (l *SQLLexicon) FirstGloss(word string) (string, bool) {
	for _, form := range l.lookupForms(word) {
		var gloss string
		err := l.conn.QueryRow(
			`SELECT gloss FROM senses WHERE word = ? ORDER BY sense_no LIMIT 1`, form,
		).Scan(&gloss)
		if err == nil {
			return gloss, true
		}
		if err != sql.ErrNoRows {
			return "", false
		}
	}
	return "", false
}

// Zipf returns the frequency of the exact lowercase form, 0 when the
// form is unattested. No lemma fallback here: an inflected form the
// corpus never recorded really is rare.
func (l *SQLLexicon) Zipf(word string) float64 {
	var z float64
	err := l.conn.QueryRow(
		`SELECT zipf FROM frequencies WHERE word = ?`, strings.ToLower(word),
	).Scan(&z)
	if err != nil {
		return 0
	}
	return z
}
