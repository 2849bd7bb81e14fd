// Package pages is the composition root: given the page being shown, it
// builds the adapters that page uses and nothing else.
package pages

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/sw33tLie/svcbook/internal/bookmarks"
	"github.com/sw33tLie/svcbook/internal/catalog"
	"github.com/sw33tLie/svcbook/internal/evaluation"
	"github.com/sw33tLie/svcbook/internal/join"
	"github.com/sw33tLie/svcbook/internal/requests"
	"github.com/sw33tLie/svcbook/internal/staff"
	"github.com/sw33tLie/svcbook/internal/theme"
	"github.com/sw33tLie/svcbook/pkg/collection"
)

type Page string

const (
	Home        Page = "home"
	Services    Page = "services"
	Bookmarks   Page = "bookmarks"
	Provider    Page = "provider"
	AddService  Page = "add-service"
	ManageStaff Page = "manage-staff"
	Join        Page = "join"
	Evaluation  Page = "evaluation"
	NewRequest  Page = "new-request"
)

// All lists every known page.
var All = []Page{Home, Services, Bookmarks, Provider, AddService, ManageStaff, Join, Evaluation, NewRequest}

// Deps carries what adapters are built from. Rand and Now may be nil.
type Deps struct {
	Store *collection.Store
	Rand  *rand.Rand
	Now   func() time.Time
}

// App holds the adapters for one page. Adapters the page does not use are nil.
type App struct {
	Page       Page
	Theme      *theme.Theme
	Catalog    *catalog.Catalog
	Staff      *staff.Roster
	Bookmarks  *bookmarks.Bookmarks
	Requests   *requests.Session
	Join       func(join.Application) (string, error)
	Evaluation func(evaluation.Evaluation) (string, error)
}

// ParsePage validates a page identifier.
func ParsePage(s string) (Page, error) {
	p := Page(s)
	if !slices.Contains(All, p) {
		return "", fmt.Errorf("unknown page %q", s)
	}
	return p, nil
}

// Wire builds the App for page.
func Wire(page Page, deps Deps) (*App, error) {
	if _, err := ParsePage(string(page)); err != nil {
		return nil, err
	}
	if deps.Store == nil {
		return nil, fmt.Errorf("wiring %s: no store", page)
	}

	app := &App{Page: page, Theme: theme.New(deps.Store)}

	switch page {
	case Services, Bookmarks:
		app.Catalog = catalog.New(deps.Store, deps.Rand)
		app.Bookmarks = bookmarks.New(deps.Store)
	case Provider, AddService:
		app.Catalog = catalog.New(deps.Store, deps.Rand)
	case ManageStaff:
		app.Staff = staff.New(deps.Store)
	case Join:
		app.Join = join.Submit
	case Evaluation:
		app.Evaluation = evaluation.Submit
	case NewRequest:
		app.Requests = requests.NewSession(deps.Now)
	}
	return app, nil
}
