package presentation

import (
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/artist"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/catalog"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/ledger"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/request"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/room"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/shopping"
)

// ItemDTO represents a catalog item for JSON output
type ItemDTO struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// ArtistDTO represents an artist for JSON output
type ArtistDTO struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	DressingRoomID int    `json:"dressing_room_id"`
}

// RoomDTO represents a dressing room with its items
type RoomDTO struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	ArtistID   int           `json:"artist_id"`
	TotalItems int           `json:"total_items"`
	Items      []ledger.Line `json:"items"` // always present, empty when the room holds nothing
}

// RequestDTO represents a supply request
type RequestDTO struct {
	ID             int           `json:"id"`
	DressingRoomID int           `json:"dressing_room_id"`
	ArtistName     string        `json:"artist_name"`
	Status         string        `json:"status"`
	Items          []ledger.Line `json:"items"`
}

// ShoppingListDTO represents a shopping list with its computed total
type ShoppingListDTO struct {
	ID          int                   `json:"id"`
	Description string                `json:"description"`
	Items       []shopping.PricedItem `json:"items"`
	Total       float64               `json:"total"`
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func mapAll[S, D any](src []S, fn func(S) D) []D {
	out := make([]D, len(src))
	for i, s := range src {
		out[i] = fn(s)
	}
	return out
}

// FromItem converts a catalog item to a DTO
func FromItem(i *catalog.Item) ItemDTO {
	return ItemDTO{ID: i.ID(), Name: i.Name(), UnitPrice: i.UnitPrice()}
}

// FromItems converts catalog items to DTOs
func FromItems(items []*catalog.Item) []ItemDTO { return mapAll(items, FromItem) }

// FromStock returns the stock lines ready for encoding
func FromStock(entries []ledger.Line) []ledger.Line { return nonNil(entries) }

// FromArtist converts an artist to a DTO
func FromArtist(a *artist.Artist) ArtistDTO {
	return ArtistDTO{ID: a.ID(), Name: a.Name(), DressingRoomID: a.DressingRoomID()}
}

func FromArtists(artists []*artist.Artist) []ArtistDTO { return mapAll(artists, FromArtist) }

// FromRoom converts a dressing room to a DTO
func FromRoom(r *room.DressingRoom) RoomDTO {
	return RoomDTO{
		ID:         r.ID(),
		Name:       r.Name(),
		ArtistID:   r.ArtistID(),
		TotalItems: r.TotalItems(),
		Items:      nonNil(r.Items()),
	}
}

func FromRooms(rooms []*room.DressingRoom) []RoomDTO { return mapAll(rooms, FromRoom) }

// FromRequest converts a request to a DTO
func FromRequest(r *request.Request) RequestDTO {
	return RequestDTO{
		ID:             r.ID(),
		DressingRoomID: r.DressingRoomID(),
		ArtistName:     r.ArtistName(),
		Status:         r.Status().String(),
		Items:          nonNil(r.Items()),
	}
}

func FromRequests(requests []*request.Request) []RequestDTO { return mapAll(requests, FromRequest) }

// FromShoppingList converts a shopping list to a DTO
func FromShoppingList(l *shopping.List) ShoppingListDTO {
	return ShoppingListDTO{
		ID:          l.ID(),
		Description: l.Description(),
		Items:       nonNil(l.Items()),
		Total:       l.Total(),
	}
}

func FromShoppingLists(lists []*shopping.List) []ShoppingListDTO {
	return mapAll(lists, FromShoppingList)
}
