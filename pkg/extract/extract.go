// Package extract obtains raw per-page text from a source document.
// Supported sources: PDF files, plain-text files (form feeds separate
// pages), saved HTML articles, and http/https article URLs.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Pages returns the raw text of each page of the document at source.
// A missing or unreadable document is the pipeline's one fatal
// precondition; pages that simply contain no extractable text (scanned
// images, say) come back as empty strings, not errors.
func Pages(ctx context.Context, source string) ([]string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return articleFromURL(ctx, source)
	}

	if _, err := os.Stat(source); err != nil {
		return nil, fmt.Errorf("source document %s: %w", source, err)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".pdf":
		return pdfPages(source)
	case ".html", ".htm":
		return articleFromFile(source)
	default:
		return textPages(source)
	}
}

// textPages reads a plain-text file. Form feed characters, which text
// converters emit at page breaks, split the document into pages.
func textPages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source document: %w", err)
	}
	return strings.Split(string(data), "\f"), nil
}
