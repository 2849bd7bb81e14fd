package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/sw33tLie/svcbook/internal/utils"
)

// lockRetryDelay is how often a blocked writer retries the file lock.
const lockRetryDelay = 50 * time.Millisecond

// File keeps every key in a single JSON object on disk. Writes hold an
// exclusive lock on <path>.lock for the whole read-modify-replace cycle.
// Waiting for that lock ends when the write's context does.
type File struct {
	path string
	lock *flock.Flock
}

// OpenFile prepares a file store at path, creating the parent directory.
// The file itself is created on first write. An empty path means
// ~/.svcbook/store.json.
func OpenFile(path string) (*File, error) {
	abs, err := absStorePath(path)
	if err != nil {
		return nil, fmt.Errorf("kv: resolve store path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("kv: create store dir: %w", err)
	}
	return &File{path: abs, lock: flock.New(abs + ".lock")}, nil
}

func absStorePath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".svcbook", "store.json"), nil
	}
	return filepath.Abs(path)
}

// Path returns the absolute path of the backing file.
func (f *File) Path() string { return f.path }

func (f *File) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := f.read()
	if err != nil {
		return "", err
	}
	v, ok := data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *File) Set(ctx context.Context, key, value string) error {
	return f.update(ctx, func(data map[string]string) { data[key] = value })
}

func (f *File) Remove(ctx context.Context, key string) error {
	return f.update(ctx, func(data map[string]string) { delete(data, key) })
}

func (f *File) update(ctx context.Context, fn func(map[string]string)) error {
	if err := f.acquire(ctx); err != nil {
		return err
	}
	defer f.lock.Unlock()

	data, err := f.read()
	if err != nil {
		return err
	}
	fn(data)

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".store-*")
	if err != nil {
		return fmt.Errorf("kv: write %s: %w", f.path, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: write %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: replace %s: %w", f.path, err)
	}
	return nil
}

// acquire takes the write lock, polling until ctx is done if another
// process holds it.
func (f *File) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	locked, err := f.lock.TryLock()
	if err != nil {
		return fmt.Errorf("kv: lock %s: %w", f.lock.Path(), err)
	}
	if locked {
		return nil
	}

	utils.Log.Infof("Another svcbook process is writing to %s, waiting for it to finish...", f.path)
	if _, err := f.lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		return fmt.Errorf("kv: lock %s: %w", f.lock.Path(), err)
	}
	return nil
}

func (f *File) read() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("kv: read %s: %w", f.path, err)
	}
	data := make(map[string]string)
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("kv: %s is not a store file: %w", f.path, err)
	}
	return data, nil
}
