// Package store implements queuectl's durable store: schema migration,
// the SQL-backed job repository, config accessor, and retention
// cleaner, all as methods on Store.
//
// Grounded on RomanQed-gqs/sql (the same bun + modernc.org/sqlite
// wiring, the same single-writer connection pool, the same
// guarded-UPDATE-with-affected-row-check acquisition pattern) and on
// original_source/queuectl/db.py for the pragmas, schema shape, and
// seeded config defaults spec.md §3/§4.1 call for.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"
)

// defaultConfig seeds the five tuning keys spec.md §3 names, with the
// defaults spec.md §3 specifies.
var defaultConfig = map[string]string{
	"max_retries":      "3",
	"backoff_base":     "2",
	"lease_seconds":    "60",
	"poll_interval_ms": "500",
	"timeout_seconds":  "300",
}

// Store is the SQL-backed implementation of every queuectl capability
// interface (Enqueuer, Leaser, Observer, DeadLetterQueue, Logger,
// Cleaner, ConfigAccessor).
type Store struct {
	db *bun.DB
}

// Open opens (creating if absent) the SQLite database at path, applies
// the WAL/busy-timeout/foreign-key pragmas spec.md §4.1 requires, and
// runs the idempotent migration. path may be ":memory:" or a
// "file::memory:?..." DSN for tests.
func Open(ctx context.Context, path string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}

	// SQLite allows a single writer; serializing through one connection
	// avoids SQLITE_BUSY under concurrent workers sharing this handle
	// (a single worker process still opens its own *Store, so this
	// caps per-process connections, not cross-process concurrency).
	sqlDB.SetMaxOpenConns(1)

	db := bun.NewDB(sqlDB, sqlitedialect.New())

	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: set WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, `PRAGMA synchronous = NORMAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: set synchronous: %w", err)
	}
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: set busy_timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: set foreign_keys: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// dsn returns path unchanged: plain filesystem paths, ":memory:" and
// "file:" DSNs are all handed to the modernc sqlite driver as given.
func dsn(path string) string {
	if path == ":memory:" || len(path) > 5 && path[:5] == "file:" {
		return path
	}
	return path
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying *bun.DB for callers (tests, administrative
// tooling) that need direct access beyond the Store's own methods.
func (s *Store) DB() *bun.DB {
	return s.db
}
