package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DefaultDBPath returns the default gamedo DB location.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "gamedo", "gamedo.db"), nil
}

// Open opens (and creates if missing) the SQLite database at path and applies migrations.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("open: empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("open: create db dir: %w", err)
	}

	dsn := "file:" + path + "?mode=rwc&_pragma=busy_timeout(5000)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// MemoryPath selects an in-process store that is discarded on exit.
const MemoryPath = ":memory:"

// OpenKV returns the KV backend for path: a MemoryKV for MemoryPath, otherwise a SQLiteKV
// on the database at path. The returned func releases the backend.
func OpenKV(ctx context.Context, path string) (KV, func(), error) {
	if path == MemoryPath {
		return NewMemoryKV(), func() {}, nil
	}
	db, err := Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return NewSQLiteKV(db), func() { _ = db.Close() }, nil
}
