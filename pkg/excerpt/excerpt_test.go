package excerpt

import (
	"strings"
	"testing"
)

func TestSentence(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		word  string
		want  string
		found bool
	}{
		{
			name:  "first sentence containing word",
			text:  "It was pure serendipity. Nothing else explains it.",
			word:  "serendipity",
			want:  "It was pure serendipity.",
			found: true,
		},
		{
			name:  "case insensitive",
			text:  "Serendipity struck again!",
			word:  "serendipity",
			want:  "Serendipity struck again!",
			found: true,
		},
		{
			name:  "whole word only",
			text:  "The cats scattered. The cat stayed.",
			word:  "cat",
			want:  "The cat stayed.",
			found: true,
		},
		{
			name:  "no terminal punctuation",
			text:  "a fragment with serendipity and no period",
			word:  "serendipity",
			want:  "a fragment with serendipity and no period",
			found: true,
		},
		{
			name:  "question mark terminator",
			text:  "Could it be serendipity? Perhaps.",
			word:  "serendipity",
			want:  "Could it be serendipity?",
			found: true,
		},
		{
			name:  "word absent",
			text:  "Nothing interesting here.",
			word:  "serendipity",
			found: false,
		},
		{
			name:  "empty text",
			text:  "",
			word:  "serendipity",
			found: false,
		},
		{
			name:  "empty word",
			text:  "Some text.",
			word:  "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Sentence(tt.text, tt.word, 0)
			if found != tt.found {
				t.Fatalf("Sentence(%q) found = %v; want %v", tt.word, found, tt.found)
			}
			if found && got != tt.want {
				t.Errorf("Sentence(%q) = %q; want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestSentenceTruncation(t *testing.T) {
	long := "The word serendipity sits inside " + strings.Repeat("a very long clause ", 20) + "that never seems to end."
	got, found := Sentence(long, "serendipity", 50)
	if !found {
		t.Fatal("expected a match")
	}
	if len([]rune(got)) != 50 {
		t.Errorf("truncated length = %d; want 50", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated sentence should end with ellipsis, got %q", got)
	}
}

func TestSentenceTinyMaxLen(t *testing.T) {
	// maxLen values too small for the ellipsis must still truncate
	// cleanly instead of panicking.
	for maxLen := 1; maxLen <= 3; maxLen++ {
		got, found := Sentence("pure serendipity here.", "serendipity", maxLen)
		if !found {
			t.Fatalf("maxLen %d: expected a match", maxLen)
		}
		if len([]rune(got)) != maxLen {
			t.Errorf("maxLen %d: got %q (len %d)", maxLen, got, len([]rune(got)))
		}
		if strings.Contains(got, "...") {
			t.Errorf("maxLen %d: no room for an ellipsis, got %q", maxLen, got)
		}
	}

	// The first length with room for the ellipsis.
	got, found := Sentence("pure serendipity here.", "serendipity", 4)
	if !found {
		t.Fatal("expected a match")
	}
	if got != "p..." {
		t.Errorf("maxLen 4: got %q; want %q", got, "p...")
	}
}

func TestSentenceDefaultMaxLen(t *testing.T) {
	long := "serendipity " + strings.Repeat("x ", 300) + "."
	got, found := Sentence(long, "serendipity", 0)
	if !found {
		t.Fatal("expected a match")
	}
	if len([]rune(got)) > DefaultMaxLen {
		t.Errorf("default cap exceeded: %d > %d", len([]rune(got)), DefaultMaxLen)
	}
}

func TestSentenceRegexMetacharactersInWord(t *testing.T) {
	// Tokens are alphabetic in practice, but the scan must not break if
	// a caller passes something odd.
	got, found := Sentence("weird a+b token.", "a+b", 0)
	if !found || got != "weird a+b token." {
		t.Errorf("quoted lookup failed: %q, %v", got, found)
	}
}
