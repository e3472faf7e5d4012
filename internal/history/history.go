// Package history keeps a local log of CLI-issued portal calls in sqlite.
// It is an operator convenience: nothing in the request path depends on it,
// and disabling it in config removes the only persistent state in the tool.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/innoalumni/portalkit/internal/common"
	_ "modernc.org/sqlite"
)

const busyTimeoutMS = 5000

// DefaultFileName is the sqlite file used when no path is configured.
const DefaultFileName = "portalkit_history.db"

// Entry is one recorded portal call.
type Entry struct {
	ID         int
	Method     string
	URL        string
	StatusCode int
	Detail     string
	CalledAt   string
}

// Store persists call entries. Open before use, Close when done.
type Store struct {
	db *sql.DB
}

// Open opens (and initializes) the sqlite history at path.
// An empty path opens an in-memory store.
func Open(path string) (*Store, error) {
	dsn := ":memory:"
	if path != "" {
		dsn = fmt.Sprintf("file:%s?_busy_timeout=%d&_fk=1", path, busyTimeoutMS)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", dsn, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: ping: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	common.GetLogger().WithComponent("history").Debug("history store opened", "path", path)
	return s, nil
}

func (s *Store) migrate() error {
	const ddl = `CREATE TABLE IF NOT EXISTS call_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		method TEXT NOT NULL,
		url TEXT NOT NULL,
		status_code INTEGER NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		called_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("history: migrate: %w", err)
	}
	return nil
}

// Record appends one call entry.
func (s *Store) Record(method, url string, status int, detail string) error {
	_, err := s.db.Exec(
		`INSERT INTO call_history (method, url, status_code, detail, called_at) VALUES (?, ?, ?, ?, ?)`,
		method, url, status, detail, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first, capped at limit
// (0 = no cap).
func (s *Store) List(limit int) ([]Entry, error) {
	q := `SELECT id, method, url, status_code, detail, called_at FROM call_history ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Method, &e.URL, &e.StatusCode, &e.Detail, &e.CalledAt); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
