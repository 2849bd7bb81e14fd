package collection

import (
	"context"
	"slices"
)

// Set is a collection of strings used for membership only, such as
// bookmarked service names.
type Set struct {
	c *Collection[string]
}

// NewSet returns a membership handle on the string collection stored under name.
func NewSet(s *Store, name string, opts ...Option[string]) *Set {
	return &Set{c: New(s, name, opts...)}
}

// Collection exposes the underlying string collection.
func (s *Set) Collection() *Collection[string] { return s.c }

// Members returns the stored keys in insertion order.
func (s *Set) Members(ctx context.Context) ([]string, error) {
	return s.c.Load(ctx, []string{})
}

// Contains reports whether key is a member.
func (s *Set) Contains(ctx context.Context, key string) (bool, error) {
	members, err := s.Members(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(members, key), nil
}

// Toggle adds key at the end if absent, otherwise removes every occurrence,
// and reports the new membership.
func (s *Set) Toggle(ctx context.Context, key string) (bool, error) {
	s.c.store.mu.Lock()
	members, err := s.c.load(ctx, []string{})
	if err != nil {
		s.c.store.mu.Unlock()
		return false, err
	}
	member := !slices.Contains(members, key)
	if member {
		members = append(members, key)
	} else {
		members = slices.DeleteFunc(members, func(m string) bool { return m == key })
	}
	err = s.c.save(ctx, members)
	s.c.store.mu.Unlock()
	if err != nil {
		return false, err
	}
	s.c.store.log.Debugf("Toggled %q in %q: member=%t", key, s.c.name, member)
	s.c.render(ctx, members)
	return member, nil
}
