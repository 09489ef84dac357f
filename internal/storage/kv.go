package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
)

// KV is the raw key/value backend the Store serializes records into.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	// PutMany writes every entry or none of them.
	PutMany(ctx context.Context, entries map[string]string) error
}

type kvEntry struct {
	Key       string `db:"key"`
	Value     string `db:"value"`
	UpdatedAt string `db:"updated_at"`
}

const upsertKV = `
	INSERT INTO kv (key, value, updated_at) VALUES (:key, :value, :updated_at)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

// SQLiteKV stores entries in the kv table.
type SQLiteKV struct {
	db *sqlx.DB
}

func NewSQLiteKV(db *sqlx.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

func (k *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := k.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, true, nil
}

func (k *SQLiteKV) Put(ctx context.Context, key, value string) error {
	e := kvEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano)}
	if _, err := k.db.NamedExecContext(ctx, upsertKV, e); err != nil {
		return fmt.Errorf("kv put %q: %w", key, err)
	}
	return nil
}

func (k *SQLiteKV) PutMany(ctx context.Context, entries map[string]string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return WithTx(ctx, k.db, func(tx *sqlx.Tx) error {
		for _, key := range sortedKeys(entries) {
			e := kvEntry{Key: key, Value: entries[key], UpdatedAt: now}
			if _, err := tx.NamedExecContext(ctx, upsertKV, e); err != nil {
				return fmt.Errorf("kv put %q: %w", key, err)
			}
		}
		return nil
	})
}

// MemoryKV is a process-local KV. OpenKV returns one for MemoryPath; nothing survives the process.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: map[string]string{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) PutMany(_ context.Context, entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range entries {
		m.data[k] = v
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
