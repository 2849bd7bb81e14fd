// Package catalog is the service catalog: the services a provider offers,
// stored under the "services" collection.
package catalog

import (
	"context"
	"math/rand/v2"
	"regexp"
	"slices"
	"strconv"

	"github.com/sw33tLie/svcbook/pkg/collection"
	"github.com/sw33tLie/svcbook/pkg/ordering"
	"github.com/sw33tLie/svcbook/pkg/validate"
)

// CollectionName is the storage key of the catalog.
const CollectionName = "services"

// ServiceEntry is one offered service.
type ServiceEntry struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

const emptyFields = "fields cannot contain empty values. Please fill in all fields before submitting."

// Rules is the add-service form's rule set, in the order the form checks it.
var Rules = validate.Rules[ServiceEntry]{
	validate.Field("name", name, validate.NotEmpty(), emptyFields),
	validate.Field("price", price, validate.NotEmpty(), emptyFields),
	validate.Field("description", func(s ServiceEntry) string { return s.Description }, validate.NotEmpty(), emptyFields),
	validate.Field("image", func(s ServiceEntry) string { return s.Image }, validate.NotEmpty(), emptyFields),
	validate.Field("name", name, validate.NotDigitInitial(), "Service name must start with a letter, not a number."),
	validate.Field("price", price, validate.Number(), "Price must contain numbers only."),
	validate.Field("price", price, validate.NonNegativeNumber(), "Price cannot be negative."),
}

func name(s ServiceEntry) string  { return s.Name }
func price(s ServiceEntry) string { return s.Price }

// Catalog reads and extends the stored services.
type Catalog struct {
	services *collection.Collection[ServiceEntry]
	rng      *rand.Rand
}

// New returns a catalog over store. A nil rng shuffles with the global source.
func New(store *collection.Store, rng *rand.Rand, opts ...collection.Option[ServiceEntry]) *Catalog {
	return &Catalog{
		services: collection.New(store, CollectionName, opts...),
		rng:      rng,
	}
}

// Collection exposes the underlying collection, e.g. to attach renderers.
func (c *Catalog) Collection() *collection.Collection[ServiceEntry] { return c.services }

// List returns the services in insertion order.
func (c *Catalog) List(ctx context.Context) ([]ServiceEntry, error) {
	return c.services.Load(ctx, []ServiceEntry{})
}

// Add validates and stores s at the end of the catalog.
func (c *Catalog) Add(ctx context.Context, s ServiceEntry) ([]ServiceEntry, error) {
	return c.services.Append(ctx, s, Rules)
}

// Ordered returns the services in the given display order. Random reshuffles
// on every call.
func (c *Catalog) Ordered(ctx context.Context, mode ordering.Mode) ([]ServiceEntry, error) {
	services, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	Order(services, mode, c.rng)
	return services, nil
}

// Order arranges services in place.
func Order(services []ServiceEntry, mode ordering.Mode, rng *rand.Rand) {
	switch mode {
	case ordering.PriceAsc, ordering.PriceDesc:
		ordering.SortByNumber(services, PriceValue, mode == ordering.PriceDesc)
	case ordering.NameAsc, ordering.NameDesc:
		ordering.SortByName(services, name, mode == ordering.NameDesc)
	default:
		ordering.Shuffle(services, rng)
	}
}

var (
	nonNumeric    = regexp.MustCompile(`[^\d.]`)
	leadingNumber = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)
)

// PriceValue is the sort key of a service's price. Prices stored through Add
// parse exactly as the price rules read them, so "1e3" is 1000. Anything else
// falls back to its leading number after stripping units ("300SR"), or 0.
func PriceValue(s ServiceEntry) float64 {
	if f, ok := validate.ParseNumber(s.Price); ok {
		return f
	}
	f, _ := ParsePrice(s.Price)
	return f
}

// ParsePrice strips everything but digits and dots and parses the leading
// number of what is left. ok is false when no number is found.
func ParsePrice(text string) (float64, bool) {
	f, err := strconv.ParseFloat(leadingNumber.FindString(nonNumeric.ReplaceAllString(text, "")), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Names returns the service names in order.
func Names(services []ServiceEntry) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		out = append(out, s.Name)
	}
	return out
}

// Find returns the first service called name.
func Find(services []ServiceEntry, name string) (ServiceEntry, bool) {
	i := slices.IndexFunc(services, func(s ServiceEntry) bool { return s.Name == name })
	if i < 0 {
		return ServiceEntry{}, false
	}
	return services[i], true
}
