// Package room is the directory of dressing rooms (camarins). Each room has an
// optional artist and its own item ledger.
package room

import (
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain/registry"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/ledger"
)

// Item is one line of a room's ledger. Quantity is always > 0.
type Item = ledger.Line

// DressingRoom is a camarim. ArtistID 0 means no artist.
type DressingRoom struct {
	id       int
	name     string
	artistID int
	items    *ledger.Ledger[Item]
}

// NewDressingRoom validates and builds a room with an empty ledger.
func NewDressingRoom(id int, name string, artistID int) (*DressingRoom, error) {
	if err := domain.FirstError(
		domain.RequireNonNegativeID("camarim id", id),
		domain.RequireNonEmpty("camarim name", name),
		domain.RequireNonNegativeID("artist id", artistID),
	); err != nil {
		return nil, err
	}
	return &DressingRoom{
		id:       id,
		name:     name,
		artistID: artistID,
		items:    ledger.New[Item](domain.EntityCamarim, ledger.PositiveAdd),
	}, nil
}

func (r *DressingRoom) ID() int       { return r.id }
func (r *DressingRoom) Name() string  { return r.name }
func (r *DressingRoom) ArtistID() int { return r.artistID }

// Items returns the room's ledger ordered by item id.
func (r *DressingRoom) Items() []Item { return r.items.Entries() }

// TotalItems sums quantities over the ledger.
func (r *DressingRoom) TotalItems() int {
	return ledger.Total(r.items, ledger.Quantities[Item])
}

// QuantityOf returns how many units of itemID the room holds.
func (r *DressingRoom) QuantityOf(itemID int) int { return r.items.Quantity(itemID) }

func (r *DressingRoom) Clone() *DressingRoom {
	c := *r
	c.items = r.items.Clone()
	return &c
}

// Directory owns every DressingRoom.
type Directory struct {
	rooms *registry.Registry[*DressingRoom]
}

// New creates an empty directory.
func New() *Directory {
	return &Directory{rooms: registry.New[*DressingRoom]()}
}

// Register adds a room and returns the new id.
func (d *Directory) Register(name string, artistID int) (int, error) {
	return d.rooms.Create(func(id int) (*DressingRoom, error) {
		return NewDressingRoom(id, name, artistID)
	})
}

// FindByID returns a copy of the room.
func (d *Directory) FindByID(id int) (*DressingRoom, bool) {
	r, ok := d.rooms.FindByID(id)
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// FindByArtist returns a copy of the first room assigned to artistID.
func (d *Directory) FindByArtist(artistID int) (*DressingRoom, bool) {
	r, ok := d.rooms.FindFirst(func(r *DressingRoom) bool { return r.artistID == artistID })
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// AddItem merges qty units into the room's ledger. qty must be positive.
func (d *Directory) AddItem(roomID, itemID int, name string, qty int) error {
	r, err := d.get(roomID)
	if err != nil {
		return err
	}
	return r.items.Add(ledger.NewLine(itemID, name, qty))
}

// RemoveItem subtracts qty units, evicting the line at zero. Errors are
// scoped to the room: domain.ErrCamarimNotFound when the item is absent here,
// *domain.InsufficientQuantityError when the room holds fewer units.
func (d *Directory) RemoveItem(roomID, itemID, qty int) error {
	r, err := d.get(roomID)
	if err != nil {
		return err
	}
	return r.items.Subtract(itemID, qty)
}

// Items returns a snapshot of the room's ledger.
func (d *Directory) Items(roomID int) ([]Item, error) {
	r, err := d.get(roomID)
	if err != nil {
		return nil, err
	}
	return r.Items(), nil
}

// TotalItems returns the number of units held by the room.
func (d *Directory) TotalItems(roomID int) (int, error) {
	r, err := d.get(roomID)
	if err != nil {
		return 0, err
	}
	return r.TotalItems(), nil
}

// Update replaces name and artist. The artist side is not touched; use
// app.LinkArtistToRoom to keep both sides in step.
func (d *Directory) Update(id int, name string, artistID int) error {
	if err := domain.FirstError(
		domain.RequireNonEmpty("camarim name", name),
		domain.RequireNonNegativeID("artist id", artistID),
	); err != nil {
		return err
	}
	r, err := d.get(id)
	if err != nil {
		return err
	}
	r.name = name
	r.artistID = artistID
	return nil
}

// SetArtist changes only the artist reference.
func (d *Directory) SetArtist(id, artistID int) error {
	if err := domain.RequireNonNegativeID("artist id", artistID); err != nil {
		return err
	}
	r, err := d.get(id)
	if err != nil {
		return err
	}
	r.artistID = artistID
	return nil
}

func (d *Directory) get(id int) (*DressingRoom, error) {
	r, ok := d.rooms.FindByID(id)
	if !ok {
		return nil, domain.NotFound(domain.EntityCamarim, "camarim %d not found", id)
	}
	return r, nil
}

// Delete removes a room together with its ledger.
func (d *Directory) Delete(id int) bool {
	return d.rooms.DeleteByID(id)
}

// List returns copies of every room in registration order.
func (d *Directory) List() []*DressingRoom {
	return d.rooms.List()
}

func (d *Directory) Len() int {
	return d.rooms.Len()
}
