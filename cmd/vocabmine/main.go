package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wordkeep/vocabmine/pkg/config"
	"github.com/wordkeep/vocabmine/pkg/lexicon"
	"github.com/wordkeep/vocabmine/pkg/review"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	maxWords := flag.Int("max-words", 0, "maximum number of candidate words to review (default 50)")
	freqThreshold := flag.Float64("freq-threshold", 0, "upper Zipf frequency bound; lower surfaces rarer words (default 3.5)")
	dictFlag := flag.String("dict", "", "path to the personal dictionary JSON (default vocabmine.json)")
	lexiconFlag := flag.String("lexicon", "", "path to the lexicon SQLite database (default lexicon.db)")
	wordlistFlag := flag.String("wordlist", "", "path to the wordlist JSON used to seed an empty lexicon")
	configFlag := flag.String("config", "", "optional YAML settings file")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: vocabmine [flags] <document path or URL>")
	}
	source := flag.Arg(0)

	settings := config.Default()
	if *configFlag != "" {
		fileSettings, err := config.Load(*configFlag)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		settings = fileSettings.Merge(settings)
	}
	// Flags win over the settings file.
	settings = config.Settings{
		StorePath:     *dictFlag,
		LexiconPath:   *lexiconFlag,
		WordlistPath:  *wordlistFlag,
		MaxWords:      *maxWords,
		FreqThreshold: *freqThreshold,
	}.Merge(settings)

	// Graceful shutdown: an interrupt during review acts as a quit, so
	// accepted words are still saved.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conn, err := sql.Open("sqlite3", settings.LexiconPath)
	if err != nil {
		log.Fatalf("Failed to open lexicon database: %v", err)
	}
	defer conn.Close()
	if err := lexicon.InitDB(conn); err != nil {
		log.Fatalf("Failed to initialize lexicon database: %v", err)
	}

	seedLexiconIfEmpty(ctx, conn, settings)

	lex, err := lexicon.NewSQLLexicon(conn)
	if err != nil {
		log.Fatalf("Failed to load lexicon: %v", err)
	}

	session := review.NewSession(source, settings.StorePath, lex, review.NewTermPrompter(os.Stdin, os.Stdout))
	session.MaxWords = settings.MaxWords
	session.MaxZipf = settings.FreqThreshold

	sum, err := session.Run(ctx)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Printf("Reviewed %d of %d candidates, added %d word(s).\n", sum.Reviewed, sum.Candidates, sum.Added)
}

// seedLexiconIfEmpty fills a fresh lexicon database from the wordlist,
// downloading the wordlist first if necessary. A failure here is a
// warning, not a fatal error: mining still runs, it just finds nothing
// until the lexicon exists.
func seedLexiconIfEmpty(ctx context.Context, conn *sql.DB, settings config.Settings) {
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM senses`).Scan(&count); err != nil || count > 0 {
		return
	}

	if err := lexicon.EnsureWordlist(ctx, settings.WordlistPath); err != nil {
		log.Printf("Warning: could not fetch wordlist: %v. Continuing with an empty lexicon.", err)
		return
	}

	entries, err := lexicon.LoadWordlist(settings.WordlistPath)
	if err != nil {
		log.Printf("Warning: could not load wordlist: %v. Continuing with an empty lexicon.", err)
		return
	}

	fmt.Printf("Seeding lexicon from %s (%d entries)...\n", settings.WordlistPath, len(entries))
	n, err := lexicon.NewImporter(conn, entries).Import(ctx)
	if err != nil {
		log.Printf("Warning: lexicon import incomplete: %v", err)
	}
	fmt.Printf("Imported %d lexicon entries.\n", n)
}
