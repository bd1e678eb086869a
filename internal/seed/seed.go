// Package seed preloads a venue from a YAML file. Entities refer to each
// other by name; ids are assigned by the registries as the file is applied.
//
//	catalog:
//	  - name: Água
//	    price: 2.50
//	stock:
//	  - item: Água
//	    quantity: 24
//	rooms:
//	  - name: Camarim A
//	    items: [{item: Água, quantity: 2}]
//	artists:
//	  - name: Marina
//	    room: Camarim A
//	requests:
//	  - room: Camarim A
//	    artist: Marina
//	    items: [{item: Água, quantity: 6}]
//	shopping:
//	  - description: Show de sexta
//	    items: [{item: Água, quantity: 10}]
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/catalog"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/log"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/tracing"
)

// Seed is the decoded file.
type Seed struct {
	Catalog  []CatalogItem  `yaml:"catalog"`
	Stock    []Line         `yaml:"stock"`
	Rooms    []Room         `yaml:"rooms"`
	Artists  []Artist       `yaml:"artists"`
	Requests []Request      `yaml:"requests"`
	Shopping []ShoppingList `yaml:"shopping"`
}

type CatalogItem struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

// Line names a catalog item and a quantity.
type Line struct {
	Item     string `yaml:"item"`
	Quantity int    `yaml:"quantity"`
}

type Room struct {
	Name  string `yaml:"name"`
	Items []Line `yaml:"items"`
}

type Artist struct {
	Name string `yaml:"name"`
	// Room is the name of a room declared under rooms. Empty means none.
	Room string `yaml:"room"`
}

type Request struct {
	Room      string `yaml:"room"`
	Artist    string `yaml:"artist"`
	Fulfilled bool   `yaml:"fulfilled"`
	Items     []Line `yaml:"items"`
}

type ShoppingList struct {
	Description string `yaml:"description"`
	Items       []Line `yaml:"items"`
}

// Summary counts what Apply created.
type Summary struct {
	Items    int
	Stock    int
	Rooms    int
	Artists  int
	Requests int
	Lists    int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d items, %d stock lines, %d rooms, %d artists, %d requests, %d shopping lists",
		s.Items, s.Stock, s.Rooms, s.Artists, s.Requests, s.Lists)
}

// Load reads and decodes a seed file.
func Load(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug(log.CatSeed, "Seed file loaded", "path", path)
	return s, nil
}

// Parse decodes seed YAML. Unknown keys are errors. An empty document gives
// an empty Seed.
func Parse(data []byte) (*Seed, error) {
	var s Seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	return &s, nil
}

// Check applies s to a scratch venue and reports the first problem.
func Check(ctx context.Context, s *Seed) (Summary, error) {
	scratch := app.New(app.Options{SessionID: "seed-check"})
	defer scratch.Close()
	return Apply(ctx, scratch, s)
}

// Apply creates everything in s inside a. It stops at the first error;
// whatever was created before it stays.
func Apply(ctx context.Context, a *app.App, s *Seed) (Summary, error) {
	var sum Summary
	err := tracing.WithSpan(ctx, a.Tracer(), tracing.SpanSeedApply, func(ctx context.Context) error {
		return (&applier{app: a, rooms: make(map[string]int)}).apply(ctx, s, &sum)
	})
	if err != nil {
		log.ErrorErr(log.CatSeed, "Seed apply failed", err, "applied", sum.String())
		return sum, err
	}
	log.Info(log.CatSeed, "Seed applied", "summary", sum.String())
	return sum, nil
}

type applier struct {
	app   *app.App
	rooms map[string]int // room name -> id
}

func (ap *applier) apply(ctx context.Context, s *Seed, sum *Summary) error {
	a := ap.app

	for i, it := range s.Catalog {
		if _, err := a.Run(ctx, app.DomainCatalog, "register", func() (int, error) {
			return a.Catalog.Register(it.Name, it.Price)
		}); err != nil {
			return fmt.Errorf("catalog[%d] %q: %w", i, it.Name, err)
		}
		sum.Items++
	}

	for i, l := range s.Stock {
		item, err := ap.item(l.Item)
		if err != nil {
			return fmt.Errorf("stock[%d]: %w", i, err)
		}
		if _, err := a.Run(ctx, app.DomainStock, "receive", func() (int, error) {
			return item.ID(), a.Stock.Receive(item.ID(), item.Name(), l.Quantity)
		}); err != nil {
			return fmt.Errorf("stock[%d] %q: %w", i, l.Item, err)
		}
		sum.Stock++
	}

	for i, r := range s.Rooms {
		if _, dup := ap.rooms[r.Name]; dup {
			return fmt.Errorf("rooms[%d]: room %q declared twice", i, r.Name)
		}
		id, err := a.RegisterRoom(ctx, r.Name, 0)
		if err != nil {
			return fmt.Errorf("rooms[%d] %q: %w", i, r.Name, err)
		}
		ap.rooms[r.Name] = id
		for j, l := range r.Items {
			item, err := ap.item(l.Item)
			if err != nil {
				return fmt.Errorf("rooms[%d].items[%d]: %w", i, j, err)
			}
			if _, err := a.Run(ctx, app.DomainRooms, "add_item", func() (int, error) {
				return id, a.Rooms.AddItem(id, item.ID(), item.Name(), l.Quantity)
			}); err != nil {
				return fmt.Errorf("rooms[%d].items[%d]: %w", i, j, err)
			}
		}
		sum.Rooms++
	}

	for i, art := range s.Artists {
		roomID, err := ap.room(art.Room)
		if err != nil {
			return fmt.Errorf("artists[%d] %q: %w", i, art.Name, err)
		}
		if _, err := a.RegisterArtist(ctx, art.Name, roomID); err != nil {
			return fmt.Errorf("artists[%d] %q: %w", i, art.Name, err)
		}
		sum.Artists++
	}

	for i, req := range s.Requests {
		roomID, err := ap.room(req.Room)
		if err != nil {
			return fmt.Errorf("requests[%d]: %w", i, err)
		}
		id, err := a.CreateRequest(ctx, roomID, req.Artist)
		if err != nil {
			return fmt.Errorf("requests[%d]: %w", i, err)
		}
		for j, l := range req.Items {
			item, err := ap.item(l.Item)
			if err != nil {
				return fmt.Errorf("requests[%d].items[%d]: %w", i, j, err)
			}
			if _, err := a.Run(ctx, app.DomainRequests, "add_item", func() (int, error) {
				return id, a.Requests.AddItem(id, item.ID(), item.Name(), l.Quantity)
			}); err != nil {
				return fmt.Errorf("requests[%d].items[%d]: %w", i, j, err)
			}
		}
		if req.Fulfilled {
			if _, err := a.Run(ctx, app.DomainRequests, "fulfill", func() (int, error) {
				return id, a.Requests.MarkFulfilled(id)
			}); err != nil {
				return fmt.Errorf("requests[%d]: %w", i, err)
			}
		}
		sum.Requests++
	}

	for i, sl := range s.Shopping {
		id, err := a.Run(ctx, app.DomainShopping, "create", func() (int, error) {
			return a.Shopping.Create(sl.Description)
		})
		if err != nil {
			return fmt.Errorf("shopping[%d]: %w", i, err)
		}
		for j, l := range sl.Items {
			item, err := ap.item(l.Item)
			if err != nil {
				return fmt.Errorf("shopping[%d].items[%d]: %w", i, j, err)
			}
			if _, err := a.Run(ctx, app.DomainShopping, "add_item", func() (int, error) {
				return id, a.Shopping.AddItem(id, item.ID(), item.Name(), l.Quantity, item.UnitPrice())
			}); err != nil {
				return fmt.Errorf("shopping[%d].items[%d]: %w", i, j, err)
			}
		}
		sum.Lists++
	}
	return nil
}

func (ap *applier) item(name string) (*catalog.Item, error) {
	item, ok := ap.app.Catalog.FindByName(name)
	if !ok {
		return nil, domain.NotFound(domain.EntityItem, "item %q not in catalog", name)
	}
	return item, nil
}

// room resolves a room name; empty gives 0.
func (ap *applier) room(name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	id, ok := ap.rooms[name]
	if !ok {
		return 0, domain.NotFound(domain.EntityCamarim, "room %q not declared", name)
	}
	return id, nil
}
