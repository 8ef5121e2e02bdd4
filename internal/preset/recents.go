/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package preset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	applog "gopropedit/internal/log"
	"gopropedit/internal/version"
	"log/slog"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

const (
	indexDirName  = ".gpe"
	indexFileName = "recents.sqlite"

	// recentsSchemaVersion tracks the local SQLite schema. Bump it for
	// breaking changes and add a migration step.
	recentsSchemaVersion = 1
)

// Recents is a small embedded index of recently used presets, kept under
// the store root. Losing it is harmless; it is rebuilt as presets are
// touched again.
type Recents struct {
	db *sql.DB
}

// RecentEntry is one row of the recently-used listing.
type RecentEntry struct {
	Name     string
	Path     string
	TouchedAt time.Time
}

// RecentsPath returns the index database file path for a store root.
func RecentsPath(root string) string {
	return filepath.Join(root, indexDirName, indexFileName)
}

// OpenRecents opens or creates the index, enables WAL mode and ensures
// the schema and version tables exist.
func OpenRecents(root string) (*Recents, error) {
	l := applog.WithOperation(applog.WithComponent("preset"), "recents_init").With(
		slog.String("root", root),
	)
	if err := os.MkdirAll(filepath.Join(root, indexDirName), 0o755); err != nil {
		l.Error("create index dir failed", slog.Any("err", err))
		return nil, fmt.Errorf("create index dir: %w", err)
	}

	path := RecentsPath(root)
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := ensureRecentsSchema(ctx, db); err != nil {
		_ = db.Close()
		l.Error("ensure schema failed", slog.Any("err", err))
		return nil, err
	}
	l.Info("recents index ready", slog.String("path", path))
	return &Recents{db: db}, nil
}

func (r *Recents) Close() error { return r.db.Close() }

// Touch records a use of a preset, inserting or refreshing its row.
func (r *Recents) Touch(name, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recents (name, path, touched_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET path=excluded.path, touched_at=excluded.touched_at;`,
		name, path, now)
	if err != nil {
		return fmt.Errorf("touch recent: %w", err)
	}
	return nil
}

// Forget drops a preset from the index.
func (r *Recents) Forget(name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recents WHERE name=?;`, name); err != nil {
		return fmt.Errorf("forget recent: %w", err)
	}
	return nil
}

// List returns up to limit entries, most recently touched first.
func (r *Recents) List(limit int) ([]RecentEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, path, touched_at FROM recents
		ORDER BY touched_at DESC, name ASC LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recents: %w", err)
	}
	defer rows.Close()

	var out []RecentEntry
	for rows.Next() {
		var e RecentEntry
		var ts string
		if err := rows.Scan(&e.Name, &e.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339, ts); perr == nil {
			e.TouchedAt = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func ensureRecentsSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS version (
			id         INTEGER PRIMARY KEY CHECK(id=1),
			schema     INTEGER NOT NULL,
			app        TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS recents (
			name       TEXT PRIMARY KEY,
			path       TEXT NOT NULL,
			touched_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_recents_touched ON recents(touched_at);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	appv := version.String()
	var cur int
	err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&cur)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.ExecContext(ctx, `INSERT INTO version (id, schema, app, created_at, updated_at) VALUES(1, ?, ?, ?, ?)`,
			recentsSchemaVersion, appv, now, now); err != nil {
			return fmt.Errorf("insert version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	default:
		if _, err := db.ExecContext(ctx, `UPDATE version SET app=?, updated_at=? WHERE id=1`, appv, now); err != nil {
			return fmt.Errorf("update version: %w", err)
		}
	}
	return nil
}
