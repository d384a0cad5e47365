// Package history records composition runs in SQLite so doc_history can
// answer "what was generated, when, and how complete was it". Only run
// provenance is stored, never the generated documents themselves.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Run is one recorded composition run.
type Run struct {
	ID           string   `json:"id"`
	Element      string   `json:"element"`
	Category     string   `json:"category"`
	Modules      []string `json:"modules"`
	AutoFillRate int      `json:"auto_fill_rate"`
	ReviewCount  int      `json:"review_count"`
	WorkorderID  string   `json:"workorder_id,omitempty"`
	FeatureID    string   `json:"feature_id,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

// RecordParams holds the input for recording a run. The ID is assigned
// by the store.
type RecordParams struct {
	Element      string
	Category     string
	Modules      []string
	AutoFillRate int
	ReviewCount  int
	WorkorderID  string
	FeatureID    string
}

// Config holds history store configuration.
type Config struct {
	DataDir string
}

// Store persists composition runs in a SQLite database under DataDir.
type Store struct {
	db *sql.DB
}

// New creates the data directory if needed, opens SQLite with WAL mode,
// and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("history: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "history.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("history: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id             TEXT PRIMARY KEY,
			element        TEXT    NOT NULL,
			category       TEXT    NOT NULL,
			modules        TEXT    NOT NULL DEFAULT '[]',
			auto_fill_rate INTEGER NOT NULL DEFAULT 0,
			review_count   INTEGER NOT NULL DEFAULT 0,
			workorder_id   TEXT,
			feature_id     TEXT,
			created_at     TEXT    NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_runs_element ON runs(element);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores one run and returns its assigned ID.
func (s *Store) Record(p RecordParams) (string, error) {
	modules := p.Modules
	if modules == nil {
		modules = []string{}
	}
	encoded, err := json.Marshal(modules)
	if err != nil {
		return "", fmt.Errorf("history: encode modules: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.Exec(
		`INSERT INTO runs (id, element, category, modules, auto_fill_rate, review_count, workorder_id, feature_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Element, p.Category, string(encoded),
		p.AutoFillRate, p.ReviewCount,
		nullableString(p.WorkorderID), nullableString(p.FeatureID),
	)
	if err != nil {
		return "", fmt.Errorf("history: record run: %w", err)
	}
	return id, nil
}

// Recent returns the most recent runs, newest first, optionally filtered
// by element name.
func (s *Store) Recent(element string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, element, category, modules, auto_fill_rate, review_count,
		       ifnull(workorder_id, ''), ifnull(feature_id, ''), created_at
		FROM runs
	`
	args := []any{}

	if element != "" {
		query += " WHERE element = ?"
		args = append(args, element)
	}

	query += " ORDER BY created_at DESC, id LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []Run
	for rows.Next() {
		var r Run
		var modules string
		if err := rows.Scan(
			&r.ID, &r.Element, &r.Category, &modules,
			&r.AutoFillRate, &r.ReviewCount,
			&r.WorkorderID, &r.FeatureID, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(modules), &r.Modules); err != nil {
			r.Modules = []string{}
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
