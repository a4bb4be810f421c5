package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/go-shiori/go-readability"
)

// maxBodySize caps fetched HTML to keep untrusted URLs from exhausting
// memory.
const maxBodySize = 10 * 1024 * 1024

// articleFromFile extracts the readable article text from a saved HTML
// page. The whole article counts as a single page.
func articleFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open HTML source: %w", err)
	}
	defer f.Close()

	fakeURL := &url.URL{Scheme: "file", Path: path}
	article, err := readability.FromReader(f, fakeURL)
	if err != nil {
		return nil, fmt.Errorf("extract article from %s: %w", path, err)
	}
	return []string{article.TextContent}, nil
}

// articleFromURL fetches a page and extracts its readable text.
func articleFromURL(ctx context.Context, rawURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	// Some hosts refuse requests without a browser-looking agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch source document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch source document: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read source document: %w", err)
	}
	if int64(len(body)) >= int64(maxBodySize) {
		return nil, fmt.Errorf("source document exceeds %d byte limit", maxBodySize)
	}

	parsedURL, _ := url.Parse(rawURL)
	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("extract article from %s: %w", rawURL, err)
	}
	return []string{article.TextContent}, nil
}
