package lexicon

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// Importer bulk-loads wordlist entries into the lexicon database.
// Workers normalize entries concurrently; a single committer applies the
// prepared batches inside transactions, since SQLite wants one writer.
type Importer struct {
	conn    *sql.DB
	entries []Entry

	// Workers is the number of preparation goroutines.
	Workers int
	// BatchSize is the number of entries per transaction.
	BatchSize int
}

// NewImporter creates an importer over the given entries.
func NewImporter(conn *sql.DB, entries []Entry) *Importer {
	return &Importer{
		conn:      conn,
		entries:   entries,
		Workers:   4,
		BatchSize: 500,
	}
}

// preparedEntry is a normalized wordlist entry ready for insertion.
type preparedEntry struct {
	word   string
	senses []Sense
	zipf   float64
}

// Import loads all entries, returning the number of distinct headwords
// written. Entries with a blank headword, or with neither senses nor a
// frequency, are skipped.
func (im *Importer) Import(ctx context.Context) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := newWorkerPool(im.Workers, im.Workers*2)
	pool.Start(ctx)

	batchCh := make(chan []preparedEntry, im.Workers*2)

	var written int64
	var commitErr error
	var commitWG sync.WaitGroup
	commitWG.Add(1)
	go func() {
		defer commitWG.Done()
		for batch := range batchCh {
			if commitErr != nil {
				continue // drain remaining batches after a failure
			}
			n, err := im.commitBatch(batch)
			if err != nil {
				commitErr = err
				cancel()
				continue
			}
			atomic.AddInt64(&written, int64(n))
		}
	}()

	batchSize := im.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	var submitErr error
	for start := 0; start < len(im.entries); start += batchSize {
		if ctx.Err() != nil {
			break
		}
		end := start + batchSize
		if end > len(im.entries) {
			end = len(im.entries)
		}
		chunk := im.entries[start:end]

		err := pool.Submit(ctx, func(ctx context.Context) error {
			prepared := prepareEntries(chunk)
			if len(prepared) == 0 {
				return nil
			}
			select {
			case batchCh <- prepared:
			case <-ctx.Done():
			}
			return nil
		})
		if err != nil {
			if err != ctx.Err() && err != ErrPoolClosed {
				submitErr = err
			}
			break
		}
	}

	// Close waits for in-flight jobs, so nothing writes to batchCh after
	// it is closed. Jobs still queued after a cancellation are dropped,
	// which is fine: the context error is reported to the caller.
	pool.Close()
	close(batchCh)
	commitWG.Wait()

	if commitErr != nil {
		return int(atomic.LoadInt64(&written)), commitErr
	}
	if submitErr != nil {
		return int(atomic.LoadInt64(&written)), submitErr
	}
	return int(atomic.LoadInt64(&written)), ctx.Err()
}

// prepareEntries normalizes a chunk: lowercases headwords, drops blanks
// and empty entries, and deduplicates senses by gloss.
func prepareEntries(chunk []Entry) []preparedEntry {
	prepared := make([]preparedEntry, 0, len(chunk))
	for _, e := range chunk {
		word := strings.ToLower(strings.TrimSpace(e.Word))
		if word == "" {
			continue
		}
		seen := make(map[string]struct{}, len(e.Senses))
		senses := make([]Sense, 0, len(e.Senses))
		for _, s := range e.Senses {
			gloss := strings.TrimSpace(s.Gloss)
			if gloss == "" {
				continue
			}
			if _, dup := seen[gloss]; dup {
				continue
			}
			seen[gloss] = struct{}{}
			senses = append(senses, Sense{POS: s.POS, Gloss: gloss})
		}
		if len(senses) == 0 && e.Zipf <= 0 {
			continue
		}
		prepared = append(prepared, preparedEntry{word: word, senses: senses, zipf: e.Zipf})
	}
	return prepared
}

func (im *Importer) commitBatch(batch []preparedEntry) (int, error) {
	tx, err := im.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op once committed
	}()

	count := 0
	for _, p := range batch {
		for i, s := range p.senses {
			_, err := tx.Exec(
				`INSERT INTO senses (word, sense_no, pos, gloss) VALUES (?, ?, ?, ?)
				 ON CONFLICT(word, sense_no) DO UPDATE SET pos = excluded.pos, gloss = excluded.gloss`,
				p.word, i+1, s.POS, s.Gloss,
			)
			if err != nil {
				return count, fmt.Errorf("insert sense for %q: %w", p.word, err)
			}
		}
		if p.zipf > 0 {
			_, err := tx.Exec(
				`INSERT INTO frequencies (word, zipf) VALUES (?, ?)
				 ON CONFLICT(word) DO UPDATE SET zipf = excluded.zipf`,
				p.word, p.zipf,
			)
			if err != nil {
				return count, fmt.Errorf("insert frequency for %q: %w", p.word, err)
			}
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import batch (%d entries): %w", len(batch), err)
	}
	return count, nil
}
