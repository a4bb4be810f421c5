package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry is one headword in a wordlist export file.
type Entry struct {
	Word   string  `json:"word"`
	Senses []Sense `json:"senses"`
	Zipf   float64 `json:"zipf"`
}

// Sense is a single meaning of a headword.
type Sense struct {
	POS   string `json:"pos"`
	Gloss string `json:"gloss"`
}

// LoadWordlist reads a wordlist export file. Both shapes in the wild are
// accepted: an object wrapper {"words": [...]} and a bare array [...].
func LoadWordlist(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var wrapper struct {
		Words []Entry `json:"words"`
	}
	dec := json.NewDecoder(f)
	if err := dec.Decode(&wrapper); err == nil && len(wrapper.Words) > 0 {
		return wrapper.Words, nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	var entries []Entry
	dec = json.NewDecoder(f)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse wordlist as object or array: %w", err)
	}
	return entries, nil
}
