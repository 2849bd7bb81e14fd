package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultDBTimeout is the SQLite busy timeout used when none is given.
const DefaultDBTimeout = 5 * time.Second

// SQLite stores every key as one row of the kv table.
type SQLite struct {
	sql *sql.DB
}

// OpenSQLite opens (and creates, if needed) the database at path.
func OpenSQLite(path string, timeout time.Duration) (*SQLite, error) {
	if timeout <= 0 {
		timeout = DefaultDBTimeout
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", path, timeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS kv (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
    `); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{sql: db}, nil
}

func (s *SQLite) Close() error {
	if s == nil || s.sql == nil {
		return nil
	}
	return s.sql.Close()
}

func (s *SQLite) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.sql.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.sql.ExecContext(ctx, `INSERT INTO kv(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`, key, value)
	return err
}

func (s *SQLite) Remove(ctx context.Context, key string) error {
	_, err := s.sql.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	return err
}

// KeyInfo describes one stored key.
type KeyInfo struct {
	Key       string
	Size      int
	UpdatedAt time.Time
}

// Keys lists every stored key ordered by name.
func (s *SQLite) Keys(ctx context.Context) ([]KeyInfo, error) {
	rows, err := s.sql.QueryContext(ctx, "SELECT key, length(value), updated_at FROM kv ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []KeyInfo
	for rows.Next() {
		var k KeyInfo
		var updatedAt string
		if err := rows.Scan(&k.Key, &k.Size, &updatedAt); err != nil {
			return nil, err
		}
		// SQLite CURRENT_TIMESTAMP format, then RFC3339
		if t, perr := time.Parse("2006-01-02 15:04:05", updatedAt); perr == nil {
			k.UpdatedAt = t
		} else if t2, perr2 := time.Parse(time.RFC3339, updatedAt); perr2 == nil {
			k.UpdatedAt = t2
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
