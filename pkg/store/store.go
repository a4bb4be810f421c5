// Package store persists the personal dictionary as a JSON object on
// disk, keyed by lowercase word.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Entry is one accepted word. Definition and Example are nil when no
// lookup result existed at accept time; that is stored as JSON null.
type Entry struct {
	Definition *string `json:"definition"`
	Example    *string `json:"example"`
	SourcePDF  string  `json:"source_pdf"`
}

// Dictionary maps lowercase words to their entries.
type Dictionary map[string]Entry

// Load reads the dictionary at path. A missing, unreadable or malformed
// file yields an empty dictionary; review sessions must always be able
// to start.
func Load(path string) Dictionary {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dictionary{}
	}
	var d Dictionary
	if err := json.Unmarshal(data, &d); err != nil {
		// Corrupted store: start fresh rather than refusing to run.
		return Dictionary{}
	}
	if d == nil {
		d = Dictionary{}
	}
	return d
}

// Save writes the dictionary to path with two-space indentation,
// keeping non-ASCII characters literal. The write goes through a
// temporary file in the same directory and a rename, so a crash never
// leaves a half-written store behind.
func Save(path string, d Dictionary) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode dictionary: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close store: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
