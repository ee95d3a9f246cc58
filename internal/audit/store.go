package audit

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/csvmend/csvmend/internal/models"
)

// Store persists a per-row audit trail of repairs to a sqlite database, so
// a run's automatic decisions can be reviewed after the fact.
type Store struct {
	db *sql.DB
}

// Entry is one audited repair
type Entry struct {
	FileName    string
	LineNumber  int
	Action      string
	MergeColumn string
	Score       float64
	Before      string
	After       string
}

const schema = `
CREATE TABLE IF NOT EXISTS repairs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	file          TEXT NOT NULL,
	line          INTEGER NOT NULL,
	action        TEXT NOT NULL,
	merge_column  TEXT NOT NULL DEFAULT '',
	score         REAL NOT NULL DEFAULT 0,
	before_row    TEXT NOT NULL,
	after_row     TEXT NOT NULL,
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_repairs_file ON repairs(file, line);
`

// Open opens (or creates) the audit database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create audit schema: %w", err)
	}

	return &Store{db: db}, nil
}

// RecordRun writes one audit entry per repaired row in a single transaction.
// Rows that passed through unchanged are not recorded.
func (s *Store) RecordRun(header []string, delimiter string, results []*models.RowResult) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin audit tx: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO repairs (file, line, action, merge_column, score, before_row, after_row)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare audit insert: %w", err)
	}
	defer stmt.Close()

	for _, result := range results {
		if result.Action == models.ActionPass {
			continue
		}

		mergeColumn := ""
		if result.MergeIndex >= 0 && result.MergeIndex < len(header) {
			mergeColumn = header[result.MergeIndex]
		}

		_, err := stmt.Exec(
			result.Record.FileName,
			result.Record.LineNumber,
			string(result.Action),
			mergeColumn,
			result.Score,
			result.Record.Line,
			strings.Join(result.Row, delimiter),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert audit entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit audit tx: %w", err)
	}

	return nil
}

// Entries returns the audit entries recorded for a file, in line order
func (s *Store) Entries(fileName string) ([]Entry, error) {
	rows, err := s.db.Query(`SELECT file, line, action, merge_column, score, before_row, after_row
		FROM repairs WHERE file = ? ORDER BY line`, fileName)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.FileName, &e.LineNumber, &e.Action, &e.MergeColumn, &e.Score, &e.Before, &e.After); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
