// Package theme keeps the site-wide light/dark preference.
package theme

import (
	"context"
	"errors"
	"fmt"

	"github.com/sw33tLie/svcbook/pkg/collection"
	"github.com/sw33tLie/svcbook/pkg/kv"
)

// Key is where the preference is stored, as a bare string.
const Key = "theme"

const (
	Light = "light"
	Dark  = "dark"
)

// Theme reads and writes the preference.
type Theme struct {
	kv kv.Store
}

func New(store *collection.Store) *Theme {
	return &Theme{kv: store.KV()}
}

// Current returns the stored theme. Anything other than "light" reads as dark.
func (t *Theme) Current(ctx context.Context) (string, error) {
	v, err := t.kv.Get(ctx, Key)
	if errors.Is(err, kv.ErrNotFound) {
		return Dark, nil
	}
	if err != nil {
		return "", &collection.StorageUnavailableError{Op: "get", Key: Key, Err: err}
	}
	if v == Light {
		return Light, nil
	}
	return Dark, nil
}

// Set stores value, which must be "light" or "dark".
func (t *Theme) Set(ctx context.Context, value string) error {
	if value != Light && value != Dark {
		return fmt.Errorf("unknown theme %q, expected %q or %q", value, Light, Dark)
	}
	if err := t.kv.Set(ctx, Key, value); err != nil {
		return &collection.StorageUnavailableError{Op: "set", Key: Key, Err: err}
	}
	return nil
}

// Toggle flips the theme and returns the new value.
func (t *Theme) Toggle(ctx context.Context) (string, error) {
	cur, err := t.Current(ctx)
	if err != nil {
		return "", err
	}
	next := Light
	if cur == Light {
		next = Dark
	}
	return next, t.Set(ctx, next)
}
