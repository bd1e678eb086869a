// Package catalog is the master list of purchasable items.
package catalog

import (
	"fmt"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain/registry"
)

// Item is a catalog entry. Two items are equal when their ids are.
type Item struct {
	id        int
	name      string
	unitPrice float64
}

// NewItem validates and builds an Item.
func NewItem(id int, name string, unitPrice float64) (*Item, error) {
	if err := domain.FirstError(
		domain.RequireNonNegativeID("item id", id),
		domain.RequireNonEmpty("item name", name),
		domain.RequireNonNegative("unit price", unitPrice),
	); err != nil {
		return nil, err
	}
	return &Item{id: id, name: name, unitPrice: unitPrice}, nil
}

func (i *Item) ID() int            { return i.id }
func (i *Item) Name() string       { return i.name }
func (i *Item) UnitPrice() float64 { return i.unitPrice }

// Equal compares by id only.
func (i *Item) Equal(other *Item) bool {
	return other != nil && i.id == other.id
}

// Display renders the one-line summary.
func (i *Item) Display() string {
	return fmt.Sprintf("Item [ID: %d, Name: %s, Price: R$ %.2f]", i.id, i.name, i.unitPrice)
}

func (i *Item) Clone() *Item {
	c := *i
	return &c
}

// Catalog owns every Item.
type Catalog struct {
	items *registry.Registry[*Item]
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{items: registry.New[*Item]()}
}

// Register adds an item. Names are unique (case-sensitive exact match).
func (c *Catalog) Register(name string, unitPrice float64) (int, error) {
	if err := domain.FirstError(
		domain.RequireNonEmpty("item name", name),
		domain.RequireNonNegative("unit price", unitPrice),
	); err != nil {
		return 0, err
	}
	if _, taken := c.findByName(name); taken {
		return 0, domain.DuplicateName(domain.EntityItem, name)
	}
	return c.items.Create(func(id int) (*Item, error) {
		return NewItem(id, name, unitPrice)
	})
}

// FindByID returns a copy of the item.
func (c *Catalog) FindByID(id int) (*Item, bool) {
	item, ok := c.items.FindByID(id)
	if !ok {
		return nil, false
	}
	return item.Clone(), true
}

// FindByName returns a copy of the item with exactly this name.
func (c *Catalog) FindByName(name string) (*Item, bool) {
	item, ok := c.findByName(name)
	if !ok {
		return nil, false
	}
	return item.Clone(), true
}

func (c *Catalog) findByName(name string) (*Item, bool) {
	return c.items.FindFirst(func(i *Item) bool { return i.name == name })
}

// Update renames and reprices an item. The new name may equal the item's
// current one but no other item's.
func (c *Catalog) Update(id int, name string, unitPrice float64) error {
	if err := domain.FirstError(
		domain.RequireNonEmpty("item name", name),
		domain.RequireNonNegative("unit price", unitPrice),
	); err != nil {
		return err
	}
	found, err := c.items.Update(id, func(i *Item) error {
		if other, taken := c.findByName(name); taken && other.id != id {
			return domain.DuplicateName(domain.EntityItem, name)
		}
		i.name = name
		i.unitPrice = unitPrice
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		return domain.NotFound(domain.EntityItem, "item %d not found", id)
	}
	return nil
}

// Delete removes an item and reports whether it existed. Copies of its name
// held by ledgers elsewhere are left untouched.
func (c *Catalog) Delete(id int) bool {
	return c.items.DeleteByID(id)
}

// List returns copies of every item in registration order.
func (c *Catalog) List() []*Item {
	return c.items.List()
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return c.items.Len()
}
