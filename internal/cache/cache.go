// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists snapshot hashes of rendered pages so unchanged
// slides can skip the external renderer on subsequent runs.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "cache.db"

// Store manages the render cache SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the render cache at dir/cache.db, creating the
// schema if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS pages (
		position INTEGER PRIMARY KEY,
		layer TEXT NOT NULL,
		page INTEGER NOT NULL,
		svg_hash TEXT NOT NULL,
		rendered_at TEXT NOT NULL
	)`)
	return err
}

// Fresh reports whether the stored snapshot hash for the page at position
// matches hash. An unknown position is simply not fresh.
func (s *Store) Fresh(ctx context.Context, position int, hash string) (bool, error) {
	var stored string
	err := s.db.QueryRowContext(ctx,
		`SELECT svg_hash FROM pages WHERE position = ?`, position,
	).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying cache: %w", err)
	}
	return stored == hash, nil
}

// Record upserts the cache row for the page at position after a render.
func (s *Store) Record(ctx context.Context, position int, layer string, page int, hash string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pages (position, layer, page, svg_hash, rendered_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(position) DO UPDATE SET
			layer=excluded.layer, page=excluded.page,
			svg_hash=excluded.svg_hash, rendered_at=excluded.rendered_at`,
		position, layer, page, hash, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording page %d: %w", position, err)
	}
	return nil
}

// Prune drops cache rows at or beyond count, for plans that shrank since
// the previous run.
func (s *Store) Prune(ctx context.Context, count int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM pages WHERE position >= ?`, count,
	)
	if err != nil {
		return fmt.Errorf("pruning cache: %w", err)
	}
	return nil
}
