package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"camptrack/pkg/logger"

	_ "modernc.org/sqlite"
)

// implements domain.KeyValueStore over a single-file SQLite database
type SQLiteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// creates a new SQLite-backed key-value store at the given path
func NewSQLiteStore(path string, logger *logger.Logger) (*SQLiteStore, error) {
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// single writer, single reader
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize store schema: %w", err)
	}

	logger.WithField("path", path).Info("Opened local key-value store")
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Get returns the value stored under key. The second return value reports
// whether the key was present.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes value under key, overwriting any prior value.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
