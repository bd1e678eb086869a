package testutil

import "github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/seed"

// Line creates a seed line for the named catalog item.
func Line(item string, qty int) seed.Line {
	return seed.Line{Item: item, Quantity: qty}
}

// ItemOption configures a catalog item during builder setup.
type ItemOption func(*seed.CatalogItem)

// Price sets the unit price.
func Price(p float64) ItemOption {
	return func(i *seed.CatalogItem) { i.Price = p }
}

// RoomOption configures a room during builder setup.
type RoomOption func(*seed.Room)

// RoomItems puts items in the room.
func RoomItems(lines ...seed.Line) RoomOption {
	return func(r *seed.Room) { r.Items = append(r.Items, lines...) }
}

// ArtistOption configures an artist during builder setup.
type ArtistOption func(*seed.Artist)

// InRoom links the artist to a room declared with WithRoom.
func InRoom(room string) ArtistOption {
	return func(a *seed.Artist) { a.Room = room }
}

// RequestOption configures a request during builder setup.
type RequestOption func(*seed.Request)

// Items adds items to a request.
func Items(lines ...seed.Line) RequestOption {
	return func(r *seed.Request) { r.Items = append(r.Items, lines...) }
}

// Fulfilled marks the request fulfilled once its items are added.
func Fulfilled() RequestOption {
	return func(r *seed.Request) { r.Fulfilled = true }
}

// ListOption configures a shopping list during builder setup.
type ListOption func(*seed.ShoppingList)

// ListItems adds items to a shopping list, priced from the catalog.
func ListItems(lines ...seed.Line) ListOption {
	return func(l *seed.ShoppingList) { l.Items = append(l.Items, lines...) }
}
