package catalog

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sw33tLie/svcbook/pkg/collection"
	"github.com/sw33tLie/svcbook/pkg/kv"
	"github.com/sw33tLie/svcbook/pkg/ordering"
	"github.com/sw33tLie/svcbook/pkg/validate"
)

func newCatalog(t *testing.T) (*Catalog, *kv.Memory) {
	t.Helper()
	mem := kv.NewMemory(0)
	return New(collection.NewStore(mem, nil), rand.New(rand.NewPCG(7, 7))), mem
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	services, err := c.Add(ctx, ServiceEntry{Name: "Haircut", Price: "50", Description: "Classic cut", Image: "x"})
	require.NoError(t, err)
	require.Len(t, services, 1)

	tests := []struct {
		name    string
		entry   ServiceEntry
		field   string
		message string
	}{
		{"empty name", ServiceEntry{Price: "10", Description: "d", Image: "x"}, "name", emptyFields},
		{"empty image", ServiceEntry{Name: "Wash", Price: "10", Description: "d"}, "image", emptyFields},
		{"digit initial", ServiceEntry{Name: "7Wash", Price: "10", Description: "d", Image: "x"}, "name", "Service name must start with a letter, not a number."},
		{"price text", ServiceEntry{Name: "Wash", Price: "ten", Description: "d", Image: "x"}, "price", "Price must contain numbers only."},
		{"negative price", ServiceEntry{Name: "Wash", Price: "-5", Description: "d", Image: "x"}, "price", "Price cannot be negative."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Add(ctx, tt.entry)
			var verr *validate.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Message)
		})
	}

	services, err = c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Haircut"}, Names(services))
}

func TestOrdered(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)
	for _, s := range []ServiceEntry{
		{Name: "massage", Price: "300", Description: "d", Image: "x"},
		{Name: "Haircut", Price: "50", Description: "d", Image: "x"},
		{Name: "Facial", Price: "120.5", Description: "d", Image: "x"},
		{Name: "Bridal", Price: "1e3", Description: "d", Image: "x"},
	} {
		_, err := c.Add(ctx, s)
		require.NoError(t, err)
	}

	tests := []struct {
		mode ordering.Mode
		want []string
	}{
		{ordering.PriceAsc, []string{"Haircut", "Facial", "massage", "Bridal"}},
		{ordering.PriceDesc, []string{"Bridal", "massage", "Facial", "Haircut"}},
		{ordering.NameAsc, []string{"Bridal", "Facial", "Haircut", "massage"}},
		{ordering.NameDesc, []string{"massage", "Haircut", "Facial", "Bridal"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got, err := c.Ordered(ctx, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Names(got))
		})
	}

	random, err := c.Ordered(ctx, ordering.Random)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"massage", "Haircut", "Facial", "Bridal"}, Names(random))

	stored, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"massage", "Haircut", "Facial", "Bridal"}, Names(stored), "ordering must not rewrite storage")
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"300SR", 300, true},
		{"SR 49.99", 49.99, true},
		{"1.2.3", 1.2, true},
		{".5", 0.5, true},
		{"", 0, false},
		{"free", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePrice(tt.in)
		assert.Equal(t, tt.ok, ok, "ParsePrice(%q)", tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "ParsePrice(%q)", tt.in)
	}
}

func TestPriceValue(t *testing.T) {
	tests := map[string]float64{
		"1e3":   1000,
		" 50 ":  50,
		"120.5": 120.5,
		"300SR": 300,
		"free":  0,
	}
	for in, want := range tests {
		assert.InDelta(t, want, PriceValue(ServiceEntry{Price: in}), 1e-9, "PriceValue(%q)", in)
	}
}

func TestFind(t *testing.T) {
	services := []ServiceEntry{{Name: "Haircut"}, {Name: "Facial"}}
	s, ok := Find(services, "Facial")
	assert.True(t, ok)
	assert.Equal(t, "Facial", s.Name)
	_, ok = Find(services, "Massage")
	assert.False(t, ok)
}

const servicesPage = `<html><body>
<div class="services">
  <div class="service-card">
    <div class="service-header"><h3> Haircut </h3><i class="fa-regular fa-bookmark"></i></div>
    <img src="images/haircut.jpg" alt="Haircut">
    <p class="price">50SR</p>
    <p>Classic cut
       and style</p>
  </div>
  <div class="service-card">
    <div class="service-header"><h3>3D Nails</h3></div>
    <img src="images/nails.jpg">
    <p class="price">80SR</p>
    <p class="description">Gel art</p>
  </div>
  <div class="service-card">
    <div class="service-header"><h3>Massage</h3></div>
    <img src="images/massage.jpg">
    <p class="price">300 SR</p>
    <p class="description">Full body</p>
  </div>
</div>
</body></html>`

func TestParsePage(t *testing.T) {
	cards, err := ParsePage(strings.NewReader(servicesPage))
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, ServiceEntry{
		Name:        "Haircut",
		Price:       "50",
		Description: "Classic cut and style",
		Image:       "images/haircut.jpg",
	}, cards[0])
	assert.Equal(t, "Gel art", cards[1].Description)
	assert.Equal(t, "300", cards[2].Price)
}

func TestImportPage(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	res, err := c.ImportPage(ctx, strings.NewReader(servicesPage))
	require.NoError(t, err)
	assert.Equal(t, []string{"Haircut", "Massage"}, Names(res.Added))
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, "3D Nails", res.Rejected[0].Card.Name)
	assert.Equal(t, "not-digit-initial", res.Rejected[0].Err.Rule)

	stored, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Haircut", "Massage"}, Names(stored))
}

func TestImportPageRejectsPriceWithoutNumber(t *testing.T) {
	const page = `<div class="service-card">
  <div class="service-header"><h3>Consultation</h3></div>
  <img src="images/consult.jpg">
  <p class="price">Free</p>
  <p class="description">First visit</p>
</div>`
	ctx := context.Background()
	c, _ := newCatalog(t)

	cards, err := ParsePage(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Empty(t, cards[0].Price)

	res, err := c.ImportPage(ctx, strings.NewReader(page))
	require.NoError(t, err)
	assert.Empty(t, res.Added)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, "price", res.Rejected[0].Err.Field)
	assert.Equal(t, "not-empty", res.Rejected[0].Err.Rule)
}

func TestImportPageStorageFailure(t *testing.T) {
	ctx := context.Background()
	c, mem := newCatalog(t)
	mem.Disable()

	_, err := c.ImportPage(ctx, strings.NewReader(servicesPage))
	require.ErrorIs(t, err, collection.ErrStorageUnavailable)
}
