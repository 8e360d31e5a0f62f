// Package store mirrors the video dataset in SQLite so the viewer can run
// from a local copy. Only dataset rows are stored; viewer state never is.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/abelbrown/courtside/internal/model"
	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// Import is one completed import run.
type Import struct {
	Source string
	Rows   int
	At     time.Time
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db, path: dbPath}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS videos (
		video_id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		channel_name TEXT NOT NULL DEFAULT '',
		channel_id TEXT NOT NULL DEFAULT '',
		published_date TEXT NOT NULL DEFAULT '',
		thumbnail_url TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		view_count TEXT NOT NULL DEFAULT '0',
		duration TEXT NOT NULL DEFAULT '',
		like_count TEXT NOT NULL DEFAULT '0',
		comment_count TEXT NOT NULL DEFAULT '0',
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_videos_channel ON videos(channel_name);

	CREATE TABLE IF NOT EXISTS imports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		imported_at DATETIME NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveRecords upserts records by video ID and returns how many were new.
// Existing rows keep their position; their fields are replaced.
// Thread-safe: acquires write lock.
func (s *Store) SaveRecords(ctx context.Context, records []model.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.PrepareContext(ctx, `SELECT 1 FROM videos WHERE video_id = ?`)
	if err != nil {
		return 0, err
	}
	defer existing.Close()

	upsert, err := tx.PrepareContext(ctx, `
		INSERT INTO videos (
			video_id, title, channel_name, channel_id, published_date,
			thumbnail_url, description, view_count, duration, like_count,
			comment_count, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(video_id) DO UPDATE SET
			title = excluded.title,
			channel_name = excluded.channel_name,
			channel_id = excluded.channel_id,
			published_date = excluded.published_date,
			thumbnail_url = excluded.thumbnail_url,
			description = excluded.description,
			view_count = excluded.view_count,
			duration = excluded.duration,
			like_count = excluded.like_count,
			comment_count = excluded.comment_count,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return 0, err
	}
	defer upsert.Close()

	now := time.Now().UTC()
	newCount := 0
	for _, r := range records {
		var one int
		switch err := existing.QueryRowContext(ctx, r.ID).Scan(&one); err {
		case sql.ErrNoRows:
			newCount++
		case nil:
		default:
			return 0, fmt.Errorf("lookup %s: %w", r.ID, err)
		}

		_, err := upsert.ExecContext(ctx,
			r.ID,
			r.Title,
			r.ChannelName,
			r.ChannelID,
			r.PublishedDate,
			r.ThumbnailURL,
			r.Description,
			r.ViewCount,
			r.Duration,
			r.LikeCount,
			r.CommentCount,
			now,
		)
		if err != nil {
			return 0, fmt.Errorf("save %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return newCount, nil
}

// Name identifies the store as a dataset source.
func (s *Store) Name() string { return "sqlite " + s.path }

// Records returns every stored video in first-import order.
// Thread-safe: acquires read lock.
func (s *Store) Records(ctx context.Context) ([]model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT video_id, title, channel_name, channel_id, published_date,
			thumbnail_url, description, view_count, duration, like_count,
			comment_count
		FROM videos
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.Record{}
	for rows.Next() {
		var r model.Record
		err := rows.Scan(
			&r.ID,
			&r.Title,
			&r.ChannelName,
			&r.ChannelID,
			&r.PublishedDate,
			&r.ThumbnailURL,
			&r.Description,
			&r.ViewCount,
			&r.Duration,
			&r.LikeCount,
			&r.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		r.Published = model.ParseTime(r.PublishedDate)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the number of stored videos.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM videos").Scan(&n)
	return n, err
}

// RecordImport logs a completed import of rows from source.
// Thread-safe: acquires write lock.
func (s *Store) RecordImport(source string, rows int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO imports (source, row_count, imported_at) VALUES (?, ?, ?)",
		source, rows, time.Now().UTC(),
	)
	return err
}

// LastImport returns the most recent import. ok is false if none exist.
func (s *Store) LastImport() (imp Import, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	err = s.db.QueryRow(
		"SELECT source, row_count, imported_at FROM imports ORDER BY id DESC LIMIT 1",
	).Scan(&imp.Source, &imp.Rows, &imp.At)
	if err == sql.ErrNoRows {
		return Import{}, false, nil
	}
	if err != nil {
		return Import{}, false, err
	}
	return imp, true, nil
}
