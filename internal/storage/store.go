package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Record keys. The names match what earlier versions of the app wrote.
const (
	KeyTasks  = "tasks"
	KeyPlayer = "userStats"
	KeyDaily  = "dailyStats"
)

// Store serializes records as JSON into a KV backend.
//
// Reads fail soft: a missing or malformed record yields the caller's default.
// Writes that fail are logged; in-memory state stays authoritative for the session.
type Store struct {
	kv  KV
	log *slog.Logger
}

func NewStore(kv KV, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{kv: kv, log: log}
}

// Load decodes the record at key into a value of type T, or returns def.
func Load[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn("load record failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		s.log.Warn("malformed record, using default", "key", key, "error", err)
		return def
	}
	return out
}

// Save writes v under key. The error is logged here; callers may ignore it.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encode record", "key", key, "error", err)
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Put(ctx, key, string(data)); err != nil {
		s.log.Error("save record", "key", key, "error", err)
		return err
	}
	s.log.Debug("record saved", "key", key, "bytes", len(data))
	return nil
}

// SaveAll writes several records in one atomic step.
func (s *Store) SaveAll(ctx context.Context, records map[string]any) error {
	entries := make(map[string]string, len(records))
	for key, v := range records {
		data, err := json.Marshal(v)
		if err != nil {
			s.log.Error("encode record", "key", key, "error", err)
			return fmt.Errorf("encode %s: %w", key, err)
		}
		entries[key] = string(data)
	}
	if err := s.kv.PutMany(ctx, entries); err != nil {
		s.log.Error("save records", "keys", len(entries), "error", err)
		return err
	}
	return nil
}
