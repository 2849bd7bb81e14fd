// Package collection persists named, ordered collections of entries in a
// key-value store.
//
// Every mutation is a full read-modify-write of the collection: it loads the
// current sequence, validates before touching anything, and stores the whole
// new sequence under the collection's key. Store serializes these cycles for
// the collections it owns. Two processes writing the same key can still lose
// an update; nothing here coordinates across processes.
package collection

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/sw33tLie/svcbook/pkg/kv"
)

// Logger abstracts logging so callers can use logrus or anything else that
// satisfies this interface.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

// Store owns the key-value capability shared by a set of collections.
type Store struct {
	kv  kv.Store
	log Logger
	mu  sync.Mutex
}

// NewStore wraps kv. A nil log discards messages.
func NewStore(s kv.Store, log Logger) *Store {
	if s == nil {
		panic("collection: kv store cannot be nil")
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Store{kv: s, log: log}
}

// KV exposes the underlying store for single-value preferences.
func (s *Store) KV() kv.Store { return s.kv }

// Validator vets an entry before it is appended. current holds the
// collection as it is before the append.
type Validator[T any] interface {
	Validate(entry T, current []T) error
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc[T any] func(entry T, current []T) error

func (f ValidatorFunc[T]) Validate(entry T, current []T) error { return f(entry, current) }

// RenderFunc receives the collection after every successful mutation.
type RenderFunc[T any] func(ctx context.Context, entries []T)

// Option configures a Collection.
type Option[T any] func(*Collection[T])

// WithSeed makes Load persist and return seed when nothing usable is stored.
func WithSeed[T any](seed ...T) Option[T] {
	return func(c *Collection[T]) { c.seed = slices.Clone(seed) }
}

// WithRenderer registers fn to run after every mutation, in registration order.
func WithRenderer[T any](fn RenderFunc[T]) Option[T] {
	return func(c *Collection[T]) { c.renderers = append(c.renderers, fn) }
}

// Collection is a typed handle on the sequence stored under Name.
type Collection[T any] struct {
	store     *Store
	name      string
	seed      []T
	renderers []RenderFunc[T]
}

// New returns a handle on the collection stored under name.
func New[T any](s *Store, name string, opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{store: s, name: name}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the collection's storage key.
func (c *Collection[T]) Name() string { return c.name }

// OnChange registers another renderer after construction.
func (c *Collection[T]) OnChange(fn RenderFunc[T]) { c.renderers = append(c.renderers, fn) }

// Load returns the stored sequence. An absent value, a stored JSON null or a
// malformed value yields def, or the seed (persisted first) when the
// collection has one. Only backend failures are returned as errors.
func (c *Collection[T]) Load(ctx context.Context, def []T) ([]T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.load(ctx, def)
}

func (c *Collection[T]) load(ctx context.Context, def []T) ([]T, error) {
	raw, err := c.store.kv.Get(ctx, c.name)
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		return nil, &StorageUnavailableError{Op: "load", Key: c.name, Err: err}
	}
	if err == nil {
		entries, problem := c.decode(raw)
		switch {
		case entries != nil:
			return entries, nil
		case problem != "":
			c.store.log.Warnf("Stored value for %q is malformed (%s), using default", c.name, problem)
		}
	}

	if c.seed == nil {
		return slices.Clone(def), nil
	}
	seed := slices.Clone(c.seed)
	if err := c.save(ctx, seed); err != nil {
		return nil, err
	}
	c.store.log.Debugf("Seeded %q with %d entries", c.name, len(seed))
	return seed, nil
}

// decode parses a stored array. A nil result with an empty problem means the
// value is JSON null and counts as absent. Otherwise problem says what is
// wrong with the value.
func (c *Collection[T]) decode(raw string) ([]T, string) {
	if !gjson.Valid(raw) {
		return nil, "not JSON"
	}
	switch res := gjson.Parse(raw); {
	case res.Type == gjson.Null:
		return nil, ""
	case res.IsObject():
		return nil, "an object, not an array"
	case !res.IsArray():
		return nil, "a " + strings.ToLower(res.Type.String()) + ", not an array"
	}
	entries := []T{}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, "unexpected element: " + err.Error()
	}
	return entries, ""
}

// Save replaces the stored collection with entries.
func (c *Collection[T]) Save(ctx context.Context, entries []T) error {
	c.store.mu.Lock()
	err := c.save(ctx, entries)
	c.store.mu.Unlock()
	if err != nil {
		return err
	}
	c.render(ctx, entries)
	return nil
}

func (c *Collection[T]) save(ctx context.Context, entries []T) error {
	if entries == nil {
		entries = []T{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := c.store.kv.Set(ctx, c.name, string(raw)); err != nil {
		return &StorageUnavailableError{Op: "save", Key: c.name, Err: err}
	}
	return nil
}

// Append validates entry against v and, if it passes, stores it at the end.
// A validation failure is returned as is and nothing is written.
func (c *Collection[T]) Append(ctx context.Context, entry T, v Validator[T]) ([]T, error) {
	c.store.mu.Lock()
	entries, err := c.load(ctx, nil)
	if err != nil {
		c.store.mu.Unlock()
		return nil, err
	}
	if v != nil {
		if err := v.Validate(entry, slices.Clone(entries)); err != nil {
			c.store.mu.Unlock()
			return nil, err
		}
	}
	entries = append(entries, entry)
	err = c.save(ctx, entries)
	c.store.mu.Unlock()
	if err != nil {
		return nil, err
	}
	c.store.log.Debugf("Appended to %q, now %d entries", c.name, len(entries))
	c.render(ctx, entries)
	return entries, nil
}

// RemoveWhere drops the entries whose position matches. If nothing matches it
// returns ErrEmptySelection and writes nothing.
func (c *Collection[T]) RemoveWhere(ctx context.Context, match func(index int) bool) ([]T, error) {
	c.store.mu.Lock()
	entries, err := c.load(ctx, nil)
	if err != nil {
		c.store.mu.Unlock()
		return nil, err
	}
	kept := make([]T, 0, len(entries))
	for i, e := range entries {
		if !match(i) {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		c.store.mu.Unlock()
		return nil, ErrEmptySelection
	}
	err = c.save(ctx, kept)
	c.store.mu.Unlock()
	if err != nil {
		return nil, err
	}
	c.store.log.Debugf("Removed %d entries from %q", len(entries)-len(kept), c.name)
	c.render(ctx, kept)
	return kept, nil
}

// Indices matches the given positions, e.g. checked rows.
func Indices(idx ...int) func(int) bool {
	set := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		set[i] = struct{}{}
	}
	return func(i int) bool {
		_, ok := set[i]
		return ok
	}
}

func (c *Collection[T]) render(ctx context.Context, entries []T) {
	for _, fn := range c.renderers {
		fn(ctx, slices.Clone(entries))
	}
}
