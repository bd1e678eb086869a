// Package artist is the directory of performers and their dressing room
// assignment.
package artist

import (
	"fmt"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain/registry"
)

// Artist is a Person with an optional dressing room (0 = unassigned).
type Artist struct {
	domain.Person
	dressingRoomID int
}

var _ domain.Displayable = (*Artist)(nil)

// NewArtist validates and builds an Artist.
func NewArtist(id int, name string, dressingRoomID int) (*Artist, error) {
	p, err := domain.NewPerson(id, name)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireNonNegativeID("dressing room id", dressingRoomID); err != nil {
		return nil, err
	}
	return &Artist{Person: p, dressingRoomID: dressingRoomID}, nil
}

func (a *Artist) DressingRoomID() int { return a.dressingRoomID }

// SetDressingRoomID assigns a room. Zero clears the assignment.
func (a *Artist) SetDressingRoomID(roomID int) error {
	if err := domain.RequireNonNegativeID("dressing room id", roomID); err != nil {
		return err
	}
	a.dressingRoomID = roomID
	return nil
}

func (a *Artist) Display() string {
	return fmt.Sprintf("Artista [ID: %d, Nome: %s, Camarim ID: %d]", a.ID(), a.Name(), a.dressingRoomID)
}

func (a *Artist) Clone() *Artist {
	c := *a
	return &c
}

// Directory owns every Artist. Names need not be unique.
type Directory struct {
	artists *registry.Registry[*Artist]
}

// New creates an empty directory.
func New() *Directory {
	return &Directory{artists: registry.New[*Artist]()}
}

// Register adds an artist and returns the new id.
func (d *Directory) Register(name string, dressingRoomID int) (int, error) {
	return d.artists.Create(func(id int) (*Artist, error) {
		return NewArtist(id, name, dressingRoomID)
	})
}

// FindByID returns a copy of the artist.
func (d *Directory) FindByID(id int) (*Artist, bool) {
	a, ok := d.artists.FindByID(id)
	if !ok {
		return nil, false
	}
	return a.Clone(), true
}

// FindByDressingRoom returns copies of every artist assigned to roomID.
func (d *Directory) FindByDressingRoom(roomID int) []*Artist {
	return d.artists.Snapshot(func(a *Artist) bool { return a.dressingRoomID == roomID })
}

// Update replaces name and room assignment. Both are validated before either
// changes.
func (d *Directory) Update(id int, name string, dressingRoomID int) error {
	if err := domain.FirstError(
		domain.RequireNonEmpty("name", name),
		domain.RequireNonNegativeID("dressing room id", dressingRoomID),
	); err != nil {
		return err
	}
	return d.mutate(id, func(a *Artist) error {
		if err := a.SetName(name); err != nil {
			return err
		}
		return a.SetDressingRoomID(dressingRoomID)
	})
}

// SetDressingRoom changes only the room assignment.
func (d *Directory) SetDressingRoom(id, roomID int) error {
	return d.mutate(id, func(a *Artist) error {
		return a.SetDressingRoomID(roomID)
	})
}

func (d *Directory) mutate(id int, fn func(*Artist) error) error {
	found, err := d.artists.Update(id, fn)
	if err != nil {
		return err
	}
	if !found {
		return domain.NotFound(domain.EntityArtist, "artist %d not found", id)
	}
	return nil
}

// Delete removes an artist and reports whether it existed.
func (d *Directory) Delete(id int) bool {
	return d.artists.DeleteByID(id)
}

// List returns copies of every artist in registration order.
func (d *Directory) List() []*Artist {
	return d.artists.List()
}

func (d *Directory) Len() int {
	return d.artists.Len()
}
