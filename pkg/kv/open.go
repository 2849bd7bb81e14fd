package kv

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config selects and configures a backend for Open.
type Config struct {
	Backend string // memory, file, sqlite, redis, nats
	Path    string // file and sqlite
	Quota   int    // memory

	SQLiteTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	NATSURL    string
	NATSBucket string
}

// Open builds the configured backend. The returned closer releases its
// resources and is never nil.
func Open(ctx context.Context, cfg Config) (Store, io.Closer, error) {
	switch strings.ToLower(cfg.Backend) {
	case "memory":
		return NewMemory(cfg.Quota), nopCloser{}, nil
	case "", "file":
		f, err := OpenFile(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return f, nopCloser{}, nil
	case "sqlite":
		db, err := OpenSQLite(cfg.Path, cfg.SQLiteTimeout)
		if err != nil {
			return nil, nil, fmt.Errorf("kv: open sqlite %s: %w", cfg.Path, err)
		}
		return db, db, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("kv: redis ping %s: %w", cfg.RedisAddr, err)
		}
		r := NewRedis(client, cfg.RedisPrefix)
		return r, r, nil
	case "nats":
		n, err := OpenNATS(ctx, cfg.NATSURL, cfg.NATSBucket)
		if err != nil {
			return nil, nil, err
		}
		return n, n, nil
	default:
		return nil, nil, fmt.Errorf("kv: unknown backend %q", cfg.Backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
