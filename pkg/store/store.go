// Package store records successful source loads so the dashboard can report when data was last refreshed.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoLoads is returned by LastLoad when nothing has been recorded for a kind.
var ErrNoLoads = errors.New("no loads recorded")

// Load kinds.
const (
	KindSchedule  = "schedule"
	KindResources = "resources"
)

// Load is one successful read of a source.
type Load struct {
	Kind     string
	Source   string
	Rows     int
	LoadedAt time.Time
}

// Store is the load history.
type Store interface {
	RecordLoad(ctx context.Context, kind, source string, rows int) error
	LastLoad(ctx context.Context, kind string) (Load, error)
	History(ctx context.Context, kind string, limit int) ([]Load, error)
	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (or creates) the history database at dbPath.
func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create parent directories: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", dbPath)
	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, now: time.Now}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS loads (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	kind      TEXT    NOT NULL,
	source    TEXT    NOT NULL,
	row_count INTEGER NOT NULL,
	loaded_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_loads_kind ON loads(kind, loaded_at);
`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RecordLoad appends a load stamped with the current time.
func (s *SQLiteStore) RecordLoad(ctx context.Context, kind, source string, rows int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO loads (kind, source, row_count, loaded_at) VALUES (?, ?, ?, ?)`,
		kind, source, rows, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record %s load: %w", kind, err)
	}
	return nil
}

// LastLoad returns the most recent load of kind. An empty kind matches any.
func (s *SQLiteStore) LastLoad(ctx context.Context, kind string) (Load, error) {
	loads, err := s.History(ctx, kind, 1)
	if err != nil {
		return Load{}, err
	}
	if len(loads) == 0 {
		return Load{}, ErrNoLoads
	}
	return loads[0], nil
}

// History lists up to limit loads of kind, newest first. limit <= 0 returns all.
func (s *SQLiteStore) History(ctx context.Context, kind string, limit int) ([]Load, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT kind, source, row_count, loaded_at FROM loads
WHERE ? = '' OR kind = ?
ORDER BY loaded_at DESC, id DESC
LIMIT ?`, kind, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query loads: %w", err)
	}
	defer rows.Close()

	var loads []Load
	for rows.Next() {
		var l Load
		var ms int64
		if err := rows.Scan(&l.Kind, &l.Source, &l.Rows, &ms); err != nil {
			return nil, fmt.Errorf("failed to scan load: %w", err)
		}
		l.LoadedAt = time.UnixMilli(ms)
		loads = append(loads, l)
	}
	return loads, rows.Err()
}
