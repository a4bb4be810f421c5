// Package review drives the interactive accept/skip/quit loop over
// ranked candidate words and owns the personal dictionary for the
// duration of a run.
package review

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wordkeep/vocabmine/pkg/candidate"
	"github.com/wordkeep/vocabmine/pkg/excerpt"
	"github.com/wordkeep/vocabmine/pkg/extract"
	"github.com/wordkeep/vocabmine/pkg/lexicon"
	"github.com/wordkeep/vocabmine/pkg/store"
	"github.com/wordkeep/vocabmine/pkg/textnorm"
	"github.com/wordkeep/vocabmine/pkg/tokenize"
)

// Decision is the user's call on a single candidate.
type Decision int

const (
	// Skip advances to the next candidate without saving anything.
	Skip Decision = iota
	// Accept adds the candidate to the personal dictionary.
	Accept
	// Quit ends the review immediately; the dictionary is still saved.
	Quit
)

// Card is everything shown to the user for one candidate. Definition
// and Example are nil when the respective lookup found nothing.
type Card struct {
	Word       string
	Definition *string
	Example    *string
}

// DecisionProvider supplies the decision for each reviewed candidate.
// It abstracts the terminal so the session is testable without one.
type DecisionProvider interface {
	Next(card Card) (Decision, error)
}

// ExtractFunc obtains per-page text for a source document.
type ExtractFunc func(ctx context.Context, source string) ([]string, error)

// Session runs one mining-and-review pass over a source document.
type Session struct {
	// Source is the document path or URL; recorded on accepted entries.
	Source string
	// StorePath locates the persisted dictionary JSON.
	StorePath string
	// MaxWords caps the number of candidates offered for review.
	MaxWords int
	// MaxZipf is the upper rarity bound for the candidate filter.
	MaxZipf float64

	Lexicon   lexicon.Lexicon
	Decisions DecisionProvider

	// Extract overrides the document backend; nil means extract.Pages.
	Extract ExtractFunc
	// Out receives progress output; nil means os.Stdout.
	Out io.Writer
}

// NewSession creates a session with the interactive defaults.
func NewSession(source, storePath string, lex lexicon.Lexicon, decisions DecisionProvider) *Session {
	return &Session{
		Source:    source,
		StorePath: storePath,
		MaxWords:  50,
		MaxZipf:   candidate.DefaultMaxZipf,
		Lexicon:   lex,
		Decisions: decisions,
	}
}

// Summary reports what a session did.
type Summary struct {
	Candidates int
	Reviewed   int
	Added      int
	QuitEarly  bool
}

// Run executes the full pipeline: load the dictionary, extract and
// normalize the document text, rank candidates, review them, save.
//
// The only fatal error before the save is a missing or unreadable
// source document; it is returned before anything touches the store.
// Every path that gets past extraction ends in a store write, including
// an early quit and an interrupt, so partial progress is never lost.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	out := s.out()
	var sum Summary

	fmt.Fprintf(out, "Loading dictionary from: %s\n", s.StorePath)
	dict := store.Load(s.StorePath)

	fmt.Fprintf(out, "\nExtracting text from: %s\n", s.Source)
	extractFn := s.Extract
	if extractFn == nil {
		extractFn = extract.Pages
	}
	pages, err := extractFn(ctx, s.Source)
	if err != nil {
		return sum, err
	}
	text := textnorm.Normalize(strings.Join(pages, "\n"))

	fmt.Fprintln(out, "\nFinding candidate vocabulary words...")
	tokens := tokenize.Words(text)
	cands := candidate.Rank(tokens, dict, s.Lexicon, s.MaxWords, s.MaxZipf)
	sum.Candidates = len(cands)

	if len(cands) == 0 {
		fmt.Fprintln(out, "No new candidate words found with current settings.")
		return sum, s.save(dict)
	}

	fmt.Fprintf(out, "Found %d candidate words.\n\n", len(cands))

review:
	for _, word := range cands {
		// An interrupt behaves like a quit: stop asking, keep progress.
		if ctx.Err() != nil {
			sum.QuitEarly = true
			break
		}

		card := Card{Word: word}
		if gloss, ok := s.Lexicon.FirstGloss(word); ok {
			card.Definition = &gloss
		}
		if example, ok := excerpt.Sentence(text, word, 0); ok {
			card.Example = &example
		}

		decision, err := s.Decisions.Next(card)
		if err != nil {
			// Input gone (closed pipe, EOF): same as a quit.
			sum.QuitEarly = true
			break
		}
		sum.Reviewed++

		switch decision {
		case Quit:
			fmt.Fprintln(out, "Quitting review.")
			sum.QuitEarly = true
			break review
		case Accept:
			dict[word] = store.Entry{
				Definition: card.Definition,
				Example:    card.Example,
				SourcePDF:  s.Source,
			}
			sum.Added++
			fmt.Fprintf(out, "Added %q to the dictionary.\n\n", word)
		default:
			fmt.Fprintf(out, "Skipped.\n\n")
		}
	}

	return sum, s.save(dict)
}

func (s *Session) save(dict store.Dictionary) error {
	out := s.out()
	fmt.Fprintln(out, "\nSaving dictionary...")
	if err := store.Save(s.StorePath, dict); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	fmt.Fprintln(out, "Done.")
	return nil
}

func (s *Session) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}
