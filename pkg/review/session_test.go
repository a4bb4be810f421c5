package review

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/wordkeep/vocabmine/pkg/store"
)

// fakeLexicon is a deterministic lexicon double.
type fakeLexicon struct {
	glosses map[string]string
	zipfs   map[string]float64
}

func (f *fakeLexicon) HasSense(word string) bool {
	_, ok := f.glosses[word]
	return ok
}

func (f *fakeLexicon) FirstGloss(word string) (string, bool) {
	g, ok := f.glosses[word]
	return g, ok
}

func (f *fakeLexicon) Zipf(word string) float64 { return f.zipfs[word] }

// scriptedDecisions replays a fixed decision sequence and records the
// cards it was shown.
type scriptedDecisions struct {
	script []Decision
	cards  []Card
}

func (s *scriptedDecisions) Next(card Card) (Decision, error) {
	s.cards = append(s.cards, card)
	if len(s.script) == 0 {
		return Skip, nil
	}
	d := s.script[0]
	s.script = s.script[1:]
	return d, nil
}

func pagesOf(pages ...string) ExtractFunc {
	return func(ctx context.Context, source string) ([]string, error) {
		return pages, nil
	}
}

func newTestSession(t *testing.T, text string, script []Decision) (*Session, *scriptedDecisions, string) {
	t.Helper()
	lex := &fakeLexicon{
		glosses: map[string]string{
			"ephemeral":   "lasting a very short time",
			"mellifluous": "pleasingly smooth to hear",
			"serendipity": "finding valuable things not sought for",
		},
		zipfs: map[string]float64{
			"ephemeral":   1.8,
			"mellifluous": 1.9,
			"serendipity": 2.2,
		},
	}
	decisions := &scriptedDecisions{script: script}
	storePath := filepath.Join(t.TempDir(), "dict.json")
	s := NewSession("book.pdf", storePath, lex, decisions)
	s.Extract = pagesOf(text)
	s.Out = &bytes.Buffer{}
	return s, decisions, storePath
}

func TestSessionAcceptPersistsEntry(t *testing.T) {
	text := "It was pure serendipity. An ephemeral thing."
	s, decisions, storePath := newTestSession(t, text, []Decision{Accept, Skip})

	sum, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if sum.Candidates != 2 || sum.Reviewed != 2 || sum.Added != 1 {
		t.Errorf("summary = %+v", sum)
	}

	// ephemeral (zipf 1.8) ranks before serendipity (2.2).
	if decisions.cards[0].Word != "ephemeral" || decisions.cards[1].Word != "serendipity" {
		t.Errorf("review order: %v", decisions.cards)
	}

	dict := store.Load(storePath)
	entry, ok := dict["ephemeral"]
	if !ok {
		t.Fatal("accepted word missing from saved dictionary")
	}
	if entry.Definition == nil || *entry.Definition != "lasting a very short time" {
		t.Errorf("definition = %v", entry.Definition)
	}
	if entry.Example == nil || *entry.Example != "An ephemeral thing." {
		t.Errorf("example = %v", entry.Example)
	}
	if entry.SourcePDF != "book.pdf" {
		t.Errorf("source = %q", entry.SourcePDF)
	}
	if _, ok := dict["serendipity"]; ok {
		t.Error("skipped word must not be saved")
	}
}

func TestSessionQuitStillSaves(t *testing.T) {
	text := "serendipity and ephemeral and mellifluous."
	s, _, storePath := newTestSession(t, text, []Decision{Quit})

	before := store.Dictionary{"older": {SourcePDF: "old.pdf"}}
	if err := store.Save(storePath, before); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	sum, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !sum.QuitEarly {
		t.Error("expected QuitEarly")
	}
	if sum.Added != 0 {
		t.Errorf("quit session added %d words", sum.Added)
	}

	after := store.Load(storePath)
	if !reflect.DeepEqual(after, before) {
		t.Errorf("store changed across a quit-only session:\n got %#v\nwant %#v", after, before)
	}
}

func TestSessionQuitSkipsRemaining(t *testing.T) {
	text := "serendipity then ephemeral then mellifluous."
	s, decisions, _ := newTestSession(t, text, []Decision{Skip, Quit, Accept})

	sum, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if sum.Reviewed != 2 {
		t.Errorf("expected 2 reviewed before quit, got %d", sum.Reviewed)
	}
	if len(decisions.cards) != 2 {
		t.Errorf("candidates after quit were still presented: %v", decisions.cards)
	}
	if sum.Added != 0 {
		t.Error("nothing should be added after a quit")
	}
}

func TestSessionNoCandidates(t *testing.T) {
	s, decisions, storePath := newTestSession(t, "the and for with", nil)

	sum, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if sum.Candidates != 0 || sum.Reviewed != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if len(decisions.cards) != 0 {
		t.Error("no prompt should happen without candidates")
	}
	// The save still happens, producing an empty store file.
	if _, err := os.Stat(storePath); err != nil {
		t.Errorf("store not written: %v", err)
	}
}

func TestSessionMissingSourceIsFatalBeforeSave(t *testing.T) {
	s, _, storePath := newTestSession(t, "", nil)
	s.Extract = func(ctx context.Context, source string) ([]string, error) {
		return nil, fs.ErrNotExist
	}

	_, err := s.Run(context.Background())
	if err == nil {
		t.Fatal("expected fatal error for missing source")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(storePath); !os.IsNotExist(statErr) {
		t.Error("store must not be written when extraction fails")
	}
}

func TestSessionCanceledContextQuitsButSaves(t *testing.T) {
	text := "serendipity and ephemeral."
	s, decisions, storePath := newTestSession(t, text, []Decision{Accept, Accept})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := s.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !sum.QuitEarly {
		t.Error("canceled context should read as an early quit")
	}
	if len(decisions.cards) != 0 {
		t.Error("no prompts should happen after cancellation")
	}
	if _, statErr := os.Stat(storePath); statErr != nil {
		t.Errorf("store should still be saved after cancellation: %v", statErr)
	}
}

func TestSessionHyphenBreakRepairedBeforeRanking(t *testing.T) {
	// "mellif-\nluous" must be seen as one word.
	s, decisions, _ := newTestSession(t, "A mellif-\nluous voice.", []Decision{Skip})

	sum, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if sum.Candidates != 1 {
		t.Fatalf("expected 1 candidate, got %d", sum.Candidates)
	}
	if decisions.cards[0].Word != "mellifluous" {
		t.Errorf("candidate = %q", decisions.cards[0].Word)
	}
	if decisions.cards[0].Example == nil || *decisions.cards[0].Example != "A mellifluous voice." {
		t.Errorf("example = %v", decisions.cards[0].Example)
	}
}
