// Package bookmarks keeps the names of the services a visitor saved.
package bookmarks

import (
	"context"
	"slices"

	"github.com/sw33tLie/svcbook/internal/catalog"
	"github.com/sw33tLie/svcbook/pkg/collection"
)

// CollectionName is the storage key of the saved service names.
const CollectionName = "savedServices"

// Bookmarks toggles and lists saved services. Names are not checked against
// the catalog; a bookmark can outlive its service.
type Bookmarks struct {
	saved *collection.Set
}

// New returns the bookmark set over store.
func New(store *collection.Store, opts ...collection.Option[string]) *Bookmarks {
	return &Bookmarks{saved: collection.NewSet(store, CollectionName, opts...)}
}

// Toggle saves name if it is not saved yet, otherwise forgets it, and
// reports whether it is saved now.
func (b *Bookmarks) Toggle(ctx context.Context, name string) (bool, error) {
	return b.saved.Toggle(ctx, name)
}

// Saved returns the saved names in the order they were saved.
func (b *Bookmarks) Saved(ctx context.Context) ([]string, error) {
	return b.saved.Members(ctx)
}

// IsSaved reports whether name is bookmarked.
func (b *Bookmarks) IsSaved(ctx context.Context, name string) (bool, error) {
	return b.saved.Contains(ctx, name)
}

// Filter keeps the services that are bookmarked, in catalog order. It
// returns nil when nothing is bookmarked at all.
func (b *Bookmarks) Filter(ctx context.Context, services []catalog.ServiceEntry) ([]catalog.ServiceEntry, error) {
	saved, err := b.Saved(ctx)
	if err != nil {
		return nil, err
	}
	if len(saved) == 0 {
		return nil, nil
	}
	out := make([]catalog.ServiceEntry, 0, len(saved))
	for _, s := range services {
		if slices.Contains(saved, s.Name) {
			out = append(out, s)
		}
	}
	return out, nil
}
