package lexicon

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// DBExecutor is satisfied by both *sql.DB and *sql.Tx so store helpers
// can run inside or outside a transaction.
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// InitDB applies the lexicon schema to the given connection.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(migrationsSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
