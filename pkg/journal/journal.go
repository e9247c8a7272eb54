// Package journal persists phrases that failed to parse, aggregated per
// locale and failure outcome, so lexicon gaps can be found from real
// traffic. It is strictly off the parsing hot path: the server feeds it
// through an asynchronous Recorder that drops records under backpressure.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Outcome values recorded for a failed parse.
const (
	OutcomeNoMatch         = "no_match"
	OutcomeInvalidQuantity = "invalid_quantity"
)

// Miss is one aggregated row of the parse_misses table.
type Miss struct {
	Phrase   string `json:"phrase"`
	Locale   string `json:"locale"`
	Outcome  string `json:"outcome"`
	Count    int    `json:"count"`
	LastSeen int64  `json:"last_seen"`
}

// DB manages the parse_misses SQLite table.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the
// parse_misses table exists.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS parse_misses (
		phrase    TEXT NOT NULL,
		locale    TEXT NOT NULL,
		outcome   TEXT NOT NULL,
		count     INTEGER NOT NULL DEFAULT 1,
		last_seen INTEGER NOT NULL,
		PRIMARY KEY (phrase, locale)
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create parse_misses table: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the underlying SQLite connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Record upserts one miss: a new (phrase, locale) pair starts at count 1,
// an existing one is incremented and its outcome and last_seen refreshed.
func (d *DB) Record(phrase, locale, outcome string) error {
	const q = `INSERT INTO parse_misses (phrase, locale, outcome, count, last_seen)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT (phrase, locale) DO UPDATE SET
			count = count + 1,
			outcome = excluded.outcome,
			last_seen = excluded.last_seen`
	if _, err := d.db.Exec(q, phrase, locale, outcome, time.Now().Unix()); err != nil {
		return fmt.Errorf("record miss %q (%s): %w", phrase, locale, err)
	}
	return nil
}

// Top returns the most frequent misses, most recent first among equals.
// Empty locale or outcome means no filter on that column; limit <= 0 means
// a default of 50 rows.
func (d *DB) Top(locale, outcome string, limit int) ([]Miss, error) {
	if limit <= 0 {
		limit = 50
	}
	q := `SELECT phrase, locale, outcome, count, last_seen FROM parse_misses WHERE 1=1`
	args := []any{}
	if locale != "" {
		q += ` AND locale = ?`
		args = append(args, locale)
	}
	if outcome != "" {
		q += ` AND outcome = ?`
		args = append(args, outcome)
	}
	q += ` ORDER BY count DESC, last_seen DESC LIMIT ?`
	args = append(args, limit)

	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list misses: %w", err)
	}
	defer rows.Close()

	var misses []Miss
	for rows.Next() {
		var m Miss
		if err := rows.Scan(&m.Phrase, &m.Locale, &m.Outcome, &m.Count, &m.LastSeen); err != nil {
			return nil, fmt.Errorf("scan miss: %w", err)
		}
		misses = append(misses, m)
	}
	return misses, rows.Err()
}
