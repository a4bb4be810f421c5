// Package config loads optional settings for the miner from a YAML
// file, so fixed paths and tunables live in configuration instead of
// constants.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the tunables the CLI accepts. Zero values mean "not
// set"; Merge fills them from another Settings.
type Settings struct {
	// StorePath locates the personal dictionary JSON.
	StorePath string `yaml:"store_path"`
	// LexiconPath locates the lexicon SQLite database.
	LexiconPath string `yaml:"lexicon_path"`
	// WordlistPath locates the wordlist JSON used to (re)build the lexicon.
	WordlistPath string `yaml:"wordlist_path"`
	// MaxWords caps the candidates offered per session.
	MaxWords int `yaml:"max_words"`
	// FreqThreshold is the upper Zipf bound for candidate rarity.
	FreqThreshold float64 `yaml:"freq_threshold"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		StorePath:     "vocabmine.json",
		LexiconPath:   "lexicon.db",
		WordlistPath:  "english-lexicon.json",
		MaxWords:      50,
		FreqThreshold: 3.5,
	}
}

// Load reads settings from a YAML file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return &s, nil
}

// Merge returns s with unset fields filled in from fallback. Unset
// means the zero value, so an explicit zero in a settings file (say
// "max_words: 0") reads as "use the fallback", not "zero candidates".
func (s Settings) Merge(fallback Settings) Settings {
	if s.StorePath == "" {
		s.StorePath = fallback.StorePath
	}
	if s.LexiconPath == "" {
		s.LexiconPath = fallback.LexiconPath
	}
	if s.WordlistPath == "" {
		s.WordlistPath = fallback.WordlistPath
	}
	if s.MaxWords == 0 {
		s.MaxWords = fallback.MaxWords
	}
	if s.FreqThreshold == 0 {
		s.FreqThreshold = fallback.FreqThreshold
	}
	return s
}
