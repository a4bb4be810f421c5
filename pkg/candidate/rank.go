package candidate

import (
	"sort"
	"strings"

	"github.com/wordkeep/vocabmine/pkg/lexicon"
	"github.com/wordkeep/vocabmine/pkg/store"
)

// DefaultCap is the ranking cap used outside the interactive flow.
const DefaultCap = 100

// Candidate is a word that passed the filter, with its document count
// and global rarity score.
type Candidate struct {
	Word  string
	Count int
	Zipf  float64
}

// Rank selects and orders review candidates from the document tokens.
//
// Counts are case-folded over all tokens. The filter runs once per
// distinct word, against the word's first-seen surface form so the
// acronym heuristic still sees the original casing. Ordering is Zipf
// ascending (rarest first), then document count descending; remaining
// ties fall back to alphabetical order, which makes the result fully
// deterministic. At most limit words are returned; limit <= 0 means
// DefaultCap.
func Rank(tokens []string, known store.Dictionary, lex lexicon.Lexicon, limit int, maxZipf float64) []string {
	if limit <= 0 {
		limit = DefaultCap
	}

	counts := make(map[string]int, len(tokens))
	surface := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		w := strings.ToLower(tok)
		if _, seen := counts[w]; !seen {
			surface[w] = tok
		}
		counts[w]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Strings(words)

	var cands []Candidate
	for _, w := range words {
		if !IsCandidate(surface[w], known, lex, maxZipf) {
			continue
		}
		cands = append(cands, Candidate{Word: w, Count: counts[w], Zipf: lex.Zipf(w)})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Zipf != cands[j].Zipf {
			return cands[i].Zipf < cands[j].Zipf
		}
		return cands[i].Count > cands[j].Count
	})

	if len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Word
	}
	return out
}
