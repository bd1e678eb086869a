// Package stock tracks the venue's central on-hand quantity per catalog item.
package stock

import (
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/ledger"
)

// Entry is one stock line. Name is a copy taken when the item was first
// received.
type Entry = ledger.Line

// Stock is the single venue-wide ledger.
type Stock struct {
	ledger *ledger.Ledger[Entry]
}

// New creates empty stock.
func New() *Stock {
	return &Stock{ledger: ledger.New[Entry](domain.EntityStock, ledger.NonNegativeAdd)}
}

// Receive adds qty units. Zero is accepted and changes nothing.
func (s *Stock) Receive(itemID int, name string, qty int) error {
	return s.ledger.Add(ledger.NewLine(itemID, name, qty))
}

// Issue takes qty units out of stock. It fails with domain.ErrStockItemNotFound
// when the item was never received and with *domain.InsufficientQuantityError
// when less than qty is on hand. Issuing everything removes the entry.
func (s *Stock) Issue(itemID, qty int) error {
	return s.ledger.Subtract(itemID, qty)
}

// CheckAvailability reports whether qty units could be issued right now.
func (s *Stock) CheckAvailability(itemID, qty int) bool {
	e, ok := s.ledger.Get(itemID)
	return ok && e.Quantity >= qty
}

// QuantityOf returns the quantity on hand, 0 when absent.
func (s *Stock) QuantityOf(itemID int) int {
	return s.ledger.Quantity(itemID)
}

// SetQuantity overwrites the quantity of an item already in stock. Setting
// zero removes the entry.
func (s *Stock) SetQuantity(itemID, qty int) error {
	return s.ledger.Replace(itemID, qty)
}

// Get returns the stock line for itemID.
func (s *Stock) Get(itemID int) (Entry, bool) {
	return s.ledger.Get(itemID)
}

// List returns a snapshot ordered by item id.
func (s *Stock) List() []Entry {
	return s.ledger.Entries()
}

// Len returns the number of distinct items on hand.
func (s *Stock) Len() int {
	return s.ledger.Len()
}
