package lexicon

// migrationsSQL holds the lexicon schema. Statements are split on ";" by
// InitDB, so none of them may contain a literal semicolon.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS senses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL,
	sense_no INTEGER NOT NULL DEFAULT 1,
	pos TEXT,
	gloss TEXT NOT NULL,
	UNIQUE(word, sense_no)
);

CREATE INDEX IF NOT EXISTS idx_senses_word ON senses(word);

CREATE TABLE IF NOT EXISTS frequencies (
	word TEXT PRIMARY KEY,
	zipf REAL NOT NULL
);
`
