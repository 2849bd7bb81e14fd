package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sw33tLie/svcbook/pkg/collection"
	"github.com/sw33tLie/svcbook/pkg/kv"
)

func TestWire(t *testing.T) {
	store := collection.NewStore(kv.NewMemory(0), nil)

	tests := []struct {
		page                                                  Page
		catalog, staff, bookmarks, requests, join, evaluation bool
	}{
		{page: Home},
		{page: Services, catalog: true, bookmarks: true},
		{page: Bookmarks, catalog: true, bookmarks: true},
		{page: Provider, catalog: true},
		{page: AddService, catalog: true},
		{page: ManageStaff, staff: true},
		{page: Join, join: true},
		{page: Evaluation, evaluation: true},
		{page: NewRequest, requests: true},
	}
	for _, tt := range tests {
		t.Run(string(tt.page), func(t *testing.T) {
			app, err := Wire(tt.page, Deps{Store: store})
			require.NoError(t, err)
			assert.Equal(t, tt.page, app.Page)
			assert.NotNil(t, app.Theme, "theme applies to every page")
			assert.Equal(t, tt.catalog, app.Catalog != nil, "catalog")
			assert.Equal(t, tt.staff, app.Staff != nil, "staff")
			assert.Equal(t, tt.bookmarks, app.Bookmarks != nil, "bookmarks")
			assert.Equal(t, tt.requests, app.Requests != nil, "requests")
			assert.Equal(t, tt.join, app.Join != nil, "join")
			assert.Equal(t, tt.evaluation, app.Evaluation != nil, "evaluation")
		})
	}
	assert.Len(t, tests, len(All))
}

func TestWireUnknownPage(t *testing.T) {
	store := collection.NewStore(kv.NewMemory(0), nil)
	_, err := Wire("PageServices.html", Deps{Store: store})
	require.Error(t, err)

	_, err = Wire(Home, Deps{})
	require.Error(t, err)
}

func TestWiringDoesNotTouchStorage(t *testing.T) {
	mem := kv.NewMemory(0)
	store := collection.NewStore(mem, nil)
	for _, p := range All {
		_, err := Wire(p, Deps{Store: store})
		require.NoError(t, err)
	}
	assert.Zero(t, mem.Len())

	app, err := Wire(ManageStaff, Deps{Store: store})
	require.NoError(t, err)
	members, err := app.Staff.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 3)
}
