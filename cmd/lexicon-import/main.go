// lexicon-import builds or refreshes the lexicon SQLite database from a
// wordlist JSON export, so the interactive miner never has to pay the
// import cost itself.
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
	"time"

	"github.com/wordkeep/vocabmine/pkg/lexicon"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	dbFlag := flag.String("db", "lexicon.db", "path to the lexicon SQLite database")
	wordlistFlag := flag.String("wordlist", "", "path to the wordlist JSON file (downloaded if missing)")
	workersFlag := flag.Int("workers", 4, "number of import workers")
	flag.Parse()

	if *wordlistFlag == "" {
		log.Fatal("Please provide a -wordlist path")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := lexicon.EnsureWordlist(ctx, *wordlistFlag); err != nil {
		log.Fatalf("Failed to obtain wordlist: %v", err)
	}

	fmt.Printf("Loading wordlist from %s...\n", *wordlistFlag)
	start := time.Now()
	entries, err := lexicon.LoadWordlist(*wordlistFlag)
	if err != nil {
		log.Fatalf("Failed to load wordlist: %v", err)
	}
	fmt.Printf("Loaded %d entries in %v.\n", len(entries), time.Since(start))

	conn, err := sql.Open("sqlite3", *dbFlag)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()
	if err := lexicon.InitDB(conn); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	importer := lexicon.NewImporter(conn, entries)
	importer.Workers = *workersFlag
	count, err := importer.Import(ctx)
	if err != nil {
		log.Fatalf("Import failed after %d entries: %v", count, err)
	}
	fmt.Printf("Imported %d headwords into %s.\n", count, *dbFlag)
}
