// Package kv provides the string-keyed storage capability the collection
// store persists into, plus the backends it can run on.
package kv

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when the key holds no value.
	ErrNotFound = errors.New("kv: key not found")
	// ErrQuotaExceeded is returned by Set when the write would exceed the store's quota.
	ErrQuotaExceeded = errors.New("kv: quota exceeded")
	// ErrUnavailable is returned when the store has been disabled or closed.
	ErrUnavailable = errors.New("kv: store unavailable")
)

// Store is a durable string-keyed storage capability.
//
// Get returns ErrNotFound for an absent key. Remove of an absent key is not an
// error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
