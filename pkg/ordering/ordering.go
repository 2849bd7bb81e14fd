// Package ordering shuffles and sorts small in-memory lists.
package ordering

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Mode is a display order for the services list.
type Mode string

const (
	Random    Mode = "random"
	PriceAsc  Mode = "price-asc"
	PriceDesc Mode = "price-desc"
	NameAsc   Mode = "name-asc"
	NameDesc  Mode = "name-desc"
)

// Modes lists every supported mode.
var Modes = []Mode{Random, PriceAsc, PriceDesc, NameAsc, NameDesc}

// ParseMode maps a sort-select value to a Mode. Unknown values mean Random.
func ParseMode(s string) Mode {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Modes, m) {
		return m
	}
	return Random
}

// Shuffle permutes s in place with the Fisher–Yates algorithm. A nil rng
// uses the global source.
func Shuffle[T any](s []T, rng *rand.Rand) {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	for i := len(s) - 1; i > 0; i-- {
		j := intN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// SortByNumber stable-sorts s by key.
func SortByNumber[T any](s []T, key func(T) float64, desc bool) {
	slices.SortStableFunc(s, func(a, b T) int {
		if desc {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	})
}

// SortByName stable-sorts s by key, ignoring case.
func SortByName[T any](s []T, key func(T) string, desc bool) {
	fold := cases.Fold()
	folded := make(map[string]string, len(s))
	k := func(e T) string {
		name := key(e)
		f, ok := folded[name]
		if !ok {
			f = fold.String(name)
			folded[name] = f
		}
		return f
	}
	slices.SortStableFunc(s, func(a, b T) int {
		if desc {
			return strings.Compare(k(b), k(a))
		}
		return strings.Compare(k(a), k(b))
	})
}
