package app

import (
	"context"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/log"
)

// The artist <-> camarim association is one-to-one and optional. Both sides
// store the partner's id (0 = none). The operations below keep the two sides
// in step: linking clears the previous partner of each side, and a reference
// to an id that is not registered is stored as is with no partner to update.

var linkTouches = []Domain{DomainArtists, DomainRooms}

// LinkArtistToRoom assigns the artist to the room on both sides.
func (a *App) LinkArtistToRoom(ctx context.Context, artistID, roomID int) error {
	_, err := a.run(ctx, Op{Domain: DomainArtists, Name: "link", Touches: linkTouches}, func(context.Context) (int, error) {
		if _, ok := a.Artists.FindByID(artistID); !ok {
			return artistID, domain.NotFound(domain.EntityArtist, "artist %d not found", artistID)
		}
		if _, ok := a.Rooms.FindByID(roomID); !ok {
			return artistID, domain.NotFound(domain.EntityCamarim, "camarim %d not found", roomID)
		}
		return artistID, a.relinkArtist(artistID, roomID)
	})
	return err
}

// UnlinkArtist clears the artist's room and the room's artist.
func (a *App) UnlinkArtist(ctx context.Context, artistID int) error {
	_, err := a.run(ctx, Op{Domain: DomainArtists, Name: "unlink", Touches: linkTouches}, func(context.Context) (int, error) {
		if _, ok := a.Artists.FindByID(artistID); !ok {
			return artistID, domain.NotFound(domain.EntityArtist, "artist %d not found", artistID)
		}
		return artistID, a.relinkArtist(artistID, 0)
	})
	return err
}

// RegisterArtist registers an artist and links it to roomID when that room
// exists.
func (a *App) RegisterArtist(ctx context.Context, name string, roomID int) (int, error) {
	return a.run(ctx, Op{Domain: DomainArtists, Name: "register", Touches: linkTouches}, func(context.Context) (int, error) {
		if err := domain.RequireNonNegativeID("dressing room id", roomID); err != nil {
			return 0, err
		}
		id, err := a.Artists.Register(name, 0)
		if err != nil {
			return 0, err
		}
		return id, a.relinkArtist(id, roomID)
	})
}

// UpdateArtist renames the artist and moves it to roomID, reconciling both
// the old and the new room.
func (a *App) UpdateArtist(ctx context.Context, id int, name string, roomID int) error {
	_, err := a.run(ctx, Op{Domain: DomainArtists, Name: "update", Touches: linkTouches}, func(context.Context) (int, error) {
		if err := domain.FirstError(
			domain.RequireNonEmpty("name", name),
			domain.RequireNonNegativeID("dressing room id", roomID),
		); err != nil {
			return id, err
		}
		current, ok := a.Artists.FindByID(id)
		if !ok {
			return id, domain.NotFound(domain.EntityArtist, "artist %d not found", id)
		}
		if err := a.Artists.Update(id, name, current.DressingRoomID()); err != nil {
			return id, err
		}
		return id, a.relinkArtist(id, roomID)
	})
	return err
}

// DeleteArtist removes the artist and frees its room.
func (a *App) DeleteArtist(ctx context.Context, id int) error {
	_, err := a.run(ctx, Op{Domain: DomainArtists, Name: "delete", Touches: linkTouches}, func(context.Context) (int, error) {
		if _, ok := a.Artists.FindByID(id); !ok {
			return id, domain.NotFound(domain.EntityArtist, "artist %d not found", id)
		}
		if err := a.relinkArtist(id, 0); err != nil {
			return id, err
		}
		a.Artists.Delete(id)
		return id, nil
	})
	return err
}

// RegisterRoom registers a camarim and links it to artistID when that artist
// exists.
func (a *App) RegisterRoom(ctx context.Context, name string, artistID int) (int, error) {
	return a.run(ctx, Op{Domain: DomainRooms, Name: "register", Touches: linkTouches}, func(context.Context) (int, error) {
		if err := domain.RequireNonNegativeID("artist id", artistID); err != nil {
			return 0, err
		}
		id, err := a.Rooms.Register(name, 0)
		if err != nil {
			return 0, err
		}
		return id, a.relinkRoom(id, artistID)
	})
}

// UpdateRoom renames the camarim and assigns it to artistID, reconciling
// both the old and the new artist.
func (a *App) UpdateRoom(ctx context.Context, id int, name string, artistID int) error {
	_, err := a.run(ctx, Op{Domain: DomainRooms, Name: "update", Touches: linkTouches}, func(context.Context) (int, error) {
		if err := domain.RequireNonNegativeID("artist id", artistID); err != nil {
			return id, err
		}
		current, ok := a.Rooms.FindByID(id)
		if !ok {
			return id, domain.NotFound(domain.EntityCamarim, "camarim %d not found", id)
		}
		if err := a.Rooms.Update(id, name, current.ArtistID()); err != nil {
			return id, err
		}
		return id, a.relinkRoom(id, artistID)
	})
	return err
}

// DeleteRoom removes the camarim with its items and frees its artist.
// Requests that name the room are kept.
func (a *App) DeleteRoom(ctx context.Context, id int) error {
	_, err := a.run(ctx, Op{Domain: DomainRooms, Name: "delete", Touches: linkTouches}, func(context.Context) (int, error) {
		r, ok := a.Rooms.FindByID(id)
		if !ok {
			return id, domain.NotFound(domain.EntityCamarim, "camarim %d not found", id)
		}
		if partner, ok := a.Artists.FindByID(r.ArtistID()); ok && partner.DressingRoomID() == id {
			if err := a.Artists.SetDressingRoom(partner.ID(), 0); err != nil {
				return id, err
			}
		}
		a.Rooms.Delete(id)
		return id, nil
	})
	return err
}

// relinkArtist points artistID at roomID and fixes every room involved.
// The artist must exist; roomID may be 0 or unregistered.
func (a *App) relinkArtist(artistID, roomID int) error {
	if err := domain.RequireNonNegativeID("dressing room id", roomID); err != nil {
		return err
	}
	current, ok := a.Artists.FindByID(artistID)
	if !ok {
		return domain.NotFound(domain.EntityArtist, "artist %d not found", artistID)
	}

	// Release the artist's old room if it points back.
	if old := current.DressingRoomID(); old != roomID {
		if r, ok := a.Rooms.FindByID(old); ok && r.ArtistID() == artistID {
			if err := a.Rooms.SetArtist(old, 0); err != nil {
				return err
			}
		}
	}

	if r, ok := a.Rooms.FindByID(roomID); ok {
		// Release the room's old artist if it points back.
		if prev := r.ArtistID(); prev != artistID {
			if other, ok := a.Artists.FindByID(prev); ok && other.DressingRoomID() == roomID {
				if err := a.Artists.SetDressingRoom(prev, 0); err != nil {
					return err
				}
			}
		}
		if err := a.Rooms.SetArtist(roomID, artistID); err != nil {
			return err
		}
	} else if roomID != 0 {
		log.Warn(log.CatApp, "Artist assigned to unregistered camarim", "artist", artistID, "camarim", roomID)
	}

	return a.Artists.SetDressingRoom(artistID, roomID)
}

// relinkRoom points roomID at artistID. The room must exist; artistID may be
// 0 or unregistered.
func (a *App) relinkRoom(roomID, artistID int) error {
	if _, ok := a.Artists.FindByID(artistID); ok {
		return a.relinkArtist(artistID, roomID)
	}

	r, ok := a.Rooms.FindByID(roomID)
	if !ok {
		return domain.NotFound(domain.EntityCamarim, "camarim %d not found", roomID)
	}
	if prev, ok := a.Artists.FindByID(r.ArtistID()); ok && prev.DressingRoomID() == roomID {
		if err := a.Artists.SetDressingRoom(prev.ID(), 0); err != nil {
			return err
		}
	}
	if artistID != 0 {
		log.Warn(log.CatApp, "Camarim assigned to unregistered artist", "camarim", roomID, "artist", artistID)
	}
	return a.Rooms.SetArtist(roomID, artistID)
}
