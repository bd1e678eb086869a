// Package testutil builds venue fixtures for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/seed"
)

// Builder accumulates venue data and applies it in dependency order:
// catalog, stock, rooms, artists, requests, shopping lists.
type Builder struct {
	t    testing.TB
	app  *app.App
	seed seed.Seed
}

// NewBuilder creates a builder filling the given app.
func NewBuilder(t testing.TB, a *app.App) *Builder {
	t.Helper()
	return &Builder{t: t, app: a}
}

// WithItem registers a catalog item. The default price is 1.00.
func (b *Builder) WithItem(name string, opts ...ItemOption) *Builder {
	item := seed.CatalogItem{Name: name, Price: 1}
	for _, opt := range opts {
		opt(&item)
	}
	b.seed.Catalog = append(b.seed.Catalog, item)
	return b
}

// WithStock receives qty units of a catalog item into stock.
func (b *Builder) WithStock(item string, qty int) *Builder {
	b.seed.Stock = append(b.seed.Stock, Line(item, qty))
	return b
}

// WithRoom registers a dressing room.
func (b *Builder) WithRoom(name string, opts ...RoomOption) *Builder {
	r := seed.Room{Name: name}
	for _, opt := range opts {
		opt(&r)
	}
	b.seed.Rooms = append(b.seed.Rooms, r)
	return b
}

// WithArtist registers an artist.
func (b *Builder) WithArtist(name string, opts ...ArtistOption) *Builder {
	a := seed.Artist{Name: name}
	for _, opt := range opts {
		opt(&a)
	}
	b.seed.Artists = append(b.seed.Artists, a)
	return b
}

// WithRequest opens a request for a room declared with WithRoom.
func (b *Builder) WithRequest(room, artist string, opts ...RequestOption) *Builder {
	r := seed.Request{Room: room, Artist: artist}
	for _, opt := range opts {
		opt(&r)
	}
	b.seed.Requests = append(b.seed.Requests, r)
	return b
}

// WithShoppingList creates a shopping list.
func (b *Builder) WithShoppingList(description string, opts ...ListOption) *Builder {
	l := seed.ShoppingList{Description: description}
	for _, opt := range opts {
		opt(&l)
	}
	b.seed.Shopping = append(b.seed.Shopping, l)
	return b
}

// Seed returns a copy of the accumulated data.
func (b *Builder) Seed() seed.Seed {
	return b.seed
}

// Build applies everything and returns the app.
func (b *Builder) Build() *app.App {
	b.t.Helper()
	s := b.seed
	_, err := seed.Apply(context.Background(), b.app, &s)
	require.NoError(b.t, err)
	return b.app
}
