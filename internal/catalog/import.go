package catalog

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sw33tLie/svcbook/pkg/validate"
)

// Rejection is a card that failed the catalog rules.
type Rejection struct {
	Card ServiceEntry
	Err  *validate.ValidationError
}

// ImportResult summarizes ImportPage.
type ImportResult struct {
	Added    []ServiceEntry
	Rejected []Rejection
}

// ParsePage extracts the service cards of a services HTML page. Prices keep
// only their numeric part, so "300SR" becomes "300" and "Free" becomes "".
func ParsePage(r io.Reader) ([]ServiceEntry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var cards []ServiceEntry
	doc.Find(".service-card").Each(func(_ int, card *goquery.Selection) {
		entry := ServiceEntry{
			Name: strings.TrimSpace(card.Find(".service-header h3").First().Text()),
		}
		// A price without any number stays empty so the card is rejected.
		if f, ok := ParsePrice(card.Find(".price").First().Text()); ok {
			entry.Price = strconv.FormatFloat(f, 'f', -1, 64)
		}
		desc := card.Find(".description").First()
		if desc.Length() == 0 {
			desc = card.Find("p").Not(".price").First()
		}
		entry.Description = strings.Join(strings.Fields(desc.Text()), " ")
		entry.Image, _ = card.Find("img").First().Attr("src")
		cards = append(cards, entry)
	})
	return cards, nil
}

// ImportPage adds every valid card of a services page to the catalog, in
// page order. Invalid cards are reported, not stored. A storage failure stops
// the import; cards added before it stay added.
func (c *Catalog) ImportPage(ctx context.Context, r io.Reader) (*ImportResult, error) {
	cards, err := ParsePage(r)
	if err != nil {
		return nil, err
	}
	res := &ImportResult{}
	for _, card := range cards {
		_, err := c.Add(ctx, card)
		var verr *validate.ValidationError
		switch {
		case err == nil:
			res.Added = append(res.Added, card)
		case errors.As(err, &verr):
			res.Rejected = append(res.Rejected, Rejection{Card: card, Err: verr})
		default:
			return res, err
		}
	}
	return res, nil
}
