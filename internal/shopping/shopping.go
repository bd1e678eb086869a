// Package shopping is the directory of priced purchase lists.
package shopping

import (
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain/registry"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/ledger"
)

// PricedItem is a shopping list line. Subtotal is always Quantity*UnitPrice.
type PricedItem struct {
	ID        int     `json:"item_id" yaml:"item_id"`
	Name      string  `json:"name" yaml:"name"`
	Quantity  int     `json:"quantity" yaml:"quantity"`
	UnitPrice float64 `json:"unit_price" yaml:"unit_price"`
	Subtotal  float64 `json:"subtotal" yaml:"subtotal"`
}

// NewPricedItem builds a line with its subtotal computed.
func NewPricedItem(itemID int, name string, qty int, unitPrice float64) PricedItem {
	return PricedItem{
		ID:        itemID,
		Name:      name,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Subtotal:  float64(qty) * unitPrice,
	}
}

func (p PricedItem) ItemID() int      { return p.ID }
func (p PricedItem) ItemName() string { return p.Name }
func (p PricedItem) Qty() int         { return p.Quantity }

// WithQuantity keeps the stored price and recomputes the subtotal.
func (p PricedItem) WithQuantity(qty int) PricedItem {
	return NewPricedItem(p.ID, p.Name, qty, p.UnitPrice)
}

func subtotal(p PricedItem) float64 { return p.Subtotal }

// List is a shopping list.
type List struct {
	id          int
	description string
	items       *ledger.Ledger[PricedItem]
}

// NewList validates and builds an empty list.
func NewList(id int, description string) (*List, error) {
	if err := domain.FirstError(
		domain.RequireNonNegativeID("shopping list id", id),
		domain.RequireNonEmpty("description", description),
	); err != nil {
		return nil, err
	}
	return &List{
		id:          id,
		description: description,
		items:       ledger.New[PricedItem](domain.EntityShoppingList, ledger.PositiveAdd),
	}, nil
}

func (l *List) ID() int             { return l.id }
func (l *List) Description() string { return l.description }
func (l *List) Items() []PricedItem { return l.items.Entries() }

// Total sums every subtotal.
func (l *List) Total() float64 { return ledger.Total(l.items, subtotal) }

// TotalUnits sums every quantity.
func (l *List) TotalUnits() int { return ledger.Total(l.items, ledger.Quantities[PricedItem]) }

func (l *List) Clone() *List {
	c := *l
	c.items = l.items.Clone()
	return &c
}

// Directory owns every shopping List.
type Directory struct {
	lists *registry.Registry[*List]
}

// New creates an empty directory.
func New() *Directory {
	return &Directory{lists: registry.New[*List]()}
}

// Create opens an empty list.
func (d *Directory) Create(description string) (int, error) {
	return d.lists.Create(func(id int) (*List, error) {
		return NewList(id, description)
	})
}

// FindByID returns a copy of the list.
func (d *Directory) FindByID(id int) (*List, bool) {
	l, ok := d.lists.FindByID(id)
	if !ok {
		return nil, false
	}
	return l.Clone(), true
}

// AddItem merges qty units. On re-add the quantity is summed and the price
// stored by the first add is kept; unitPrice is then only validated.
func (d *Directory) AddItem(listID, itemID int, name string, qty int, unitPrice float64) error {
	if err := domain.RequireNonNegative("unit price", unitPrice); err != nil {
		return err
	}
	l, err := d.get(listID)
	if err != nil {
		return err
	}
	return l.items.Add(NewPricedItem(itemID, name, qty, unitPrice))
}

// RemoveItem detaches an item from the list entirely.
func (d *Directory) RemoveItem(listID, itemID int) error {
	l, err := d.get(listID)
	if err != nil {
		return err
	}
	if !l.items.RemoveKey(itemID) {
		return domain.NotFound(domain.EntityShoppingList, "item %d not in list %d", itemID, listID)
	}
	return nil
}

// UpdateQuantity replaces an item's quantity and recomputes its subtotal.
func (d *Directory) UpdateQuantity(listID, itemID, qty int) error {
	l, err := d.get(listID)
	if err != nil {
		return err
	}
	return l.items.Replace(itemID, qty)
}

// CalculateTotal sums every subtotal of the list.
func (d *Directory) CalculateTotal(listID int) (float64, error) {
	l, err := d.get(listID)
	if err != nil {
		return 0, err
	}
	return l.Total(), nil
}

// Clear empties the list but keeps it.
func (d *Directory) Clear(listID int) error {
	l, err := d.get(listID)
	if err != nil {
		return err
	}
	l.items.Clear()
	return nil
}

// Items returns a snapshot of the list's lines.
func (d *Directory) Items(listID int) ([]PricedItem, error) {
	l, err := d.get(listID)
	if err != nil {
		return nil, err
	}
	return l.Items(), nil
}

// UpdateDescription renames a list.
func (d *Directory) UpdateDescription(listID int, description string) error {
	if err := domain.RequireNonEmpty("description", description); err != nil {
		return err
	}
	l, err := d.get(listID)
	if err != nil {
		return err
	}
	l.description = description
	return nil
}

func (d *Directory) get(id int) (*List, error) {
	l, ok := d.lists.FindByID(id)
	if !ok {
		return nil, domain.NotFound(domain.EntityShoppingList, "shopping list %d not found", id)
	}
	return l, nil
}

// Delete removes a list with its lines.
func (d *Directory) Delete(id int) bool {
	return d.lists.DeleteByID(id)
}

// List returns copies of every list in creation order.
func (d *Directory) List() []*List {
	return d.lists.List()
}

func (d *Directory) Len() int {
	return d.lists.Len()
}
