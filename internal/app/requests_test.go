package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
)

type venue struct {
	*app.App
	water, towel int
	room         int
	request      int
}

// newVenue registers two catalog items, a room and a pending request for
// 3 waters and 2 towels. Stock holds 5 waters and 1 towel.
func newVenue(t *testing.T) venue {
	t.Helper()
	a := createTestApp(t)
	ctx := context.Background()
	v := venue{App: a}

	var err error
	v.water, err = a.Catalog.Register("Água", 2.5)
	require.NoError(t, err)
	v.towel, err = a.Catalog.Register("Toalha", 12)
	require.NoError(t, err)
	require.NoError(t, a.Stock.Receive(v.water, "Água", 5))
	require.NoError(t, a.Stock.Receive(v.towel, "Toalha", 1))

	v.room, err = a.RegisterRoom(ctx, "Camarim A", 0)
	require.NoError(t, err)
	v.request, err = a.CreateRequest(ctx, v.room, "Marina")
	require.NoError(t, err)
	require.NoError(t, a.Requests.AddItem(v.request, v.water, "Água", 3))
	require.NoError(t, a.Requests.AddItem(v.request, v.towel, "Toalha", 2))
	return v
}

func TestDispatchRequest_ShortStockChangesNothing(t *testing.T) {
	v := newVenue(t)
	ctx := context.Background()

	err := v.DispatchRequest(ctx, v.request)
	var short *domain.InsufficientQuantityError
	require.True(t, errors.As(err, &short))
	assert.Equal(t, v.towel, short.ItemID)
	assert.Equal(t, 1, short.Available)
	assert.Equal(t, 2, short.Requested)
	require.ErrorIs(t, err, domain.ErrStock)

	assert.Equal(t, 5, v.Stock.QuantityOf(v.water))
	total, _ := v.Rooms.TotalItems(v.room)
	assert.Zero(t, total)
	req, _ := v.Requests.FindByID(v.request)
	assert.False(t, req.Fulfilled())
}

func TestDispatchRequest_MovesItems(t *testing.T) {
	v := newVenue(t)
	ctx := context.Background()
	require.NoError(t, v.Stock.Receive(v.towel, "Toalha", 1))

	require.NoError(t, v.DispatchRequest(ctx, v.request))

	assert.Equal(t, 2, v.Stock.QuantityOf(v.water))
	_, held := v.Stock.Get(v.towel)
	assert.False(t, held, "towels issued down to zero are evicted")

	items, err := v.Rooms.Items(v.room)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 2, items[1].Quantity)

	req, _ := v.Requests.FindByID(v.request)
	assert.True(t, req.Fulfilled())

	require.ErrorIs(t, v.DispatchRequest(ctx, v.request), domain.ErrInvalidOperation)
	require.ErrorIs(t, v.DispatchRequest(ctx, 99), domain.ErrRequestNotFound)

	last := v.History()[len(v.History())-1]
	assert.Equal(t, "dispatch", last.Op)
}

func TestDispatchRequest_RoomMissing(t *testing.T) {
	v := newVenue(t)
	ctx := context.Background()
	require.NoError(t, v.DeleteRoom(ctx, v.room))

	require.ErrorIs(t, v.DispatchRequest(ctx, v.request), domain.ErrCamarimNotFound)
	assert.Equal(t, 5, v.Stock.QuantityOf(v.water))
}

func TestDispatchRequest_InvalidatesStockReport(t *testing.T) {
	v := newVenue(t)
	ctx := context.Background()
	require.NoError(t, v.Stock.Receive(v.towel, "Toalha", 1))

	before, err := v.Report(ctx, app.DomainStock, false)
	require.NoError(t, err)
	require.Contains(t, before, "Toalha")

	require.NoError(t, v.DispatchRequest(ctx, v.request))
	after, err := v.Report(ctx, app.DomainStock, false)
	require.NoError(t, err)
	require.NotContains(t, after, "Toalha")
}

func TestShortfallsAndRestockList(t *testing.T) {
	v := newVenue(t)
	ctx := context.Background()

	// A second pending request adds to the demand; fulfilled ones do not.
	second, err := v.CreateRequest(ctx, v.room, "João")
	require.NoError(t, err)
	require.NoError(t, v.Requests.AddItem(second, v.water, "Água", 4))
	require.NoError(t, v.Requests.AddItem(second, 99, "Gelo", 1))

	short := v.Shortfalls()
	require.Len(t, short, 3)
	assert.Equal(t, app.Shortfall{ItemID: v.water, Name: "Água", Requested: 7, InStock: 5}, short[0])
	assert.Equal(t, 1, short[1].Missing())
	assert.Equal(t, 99, short[2].ItemID)

	listID, err := v.RestockList(ctx, "")
	require.NoError(t, err)
	l, ok := v.Shopping.FindByID(listID)
	require.True(t, ok)
	assert.Equal(t, app.DefaultRestockDescription, l.Description())

	items := l.Items()
	require.Len(t, items, 3)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 2.5, items[0].UnitPrice, 1e-9)
	assert.InDelta(t, 12.0, items[1].Subtotal, 1e-9)
	assert.Equal(t, "Gelo", items[2].Name)
	assert.Zero(t, items[2].UnitPrice, "items outside the catalog are free")
	assert.InDelta(t, 17.0, l.Total(), 1e-9)
}

func TestRestockList_NothingShort(t *testing.T) {
	a := createTestApp(t)
	_, err := a.RestockList(context.Background(), "x")
	require.ErrorIs(t, err, app.ErrNothingToRestock)
	require.Zero(t, a.Shopping.Len())
}
