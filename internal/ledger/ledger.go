// Package ledger implements the keyed quantity aggregation embedded in stock,
// dressing rooms, requests and shopping lists: one entry per item id, merged
// on add, evicted when its quantity reaches zero.
package ledger

import (
	"maps"
	"slices"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
)

// Entry is a ledger line. Entries are values; WithQuantity returns a copy
// carrying the new quantity and anything derived from it.
type Entry[E any] interface {
	ItemID() int
	ItemName() string
	Qty() int
	WithQuantity(qty int) E
}

// Policy selects the quantity rule applied on Add.
type Policy int

const (
	// PositiveAdd rejects qty <= 0 (rooms, requests, shopping lists).
	PositiveAdd Policy = iota
	// NonNegativeAdd accepts qty == 0 as a no-op merge (stock receiving).
	NonNegativeAdd
)

// Ledger maps item id to entry. It is not safe for concurrent use.
type Ledger[E Entry[E]] struct {
	scope   domain.Entity
	policy  Policy
	entries map[int]E
}

// New creates an empty ledger. scope names the owner in error messages.
func New[E Entry[E]](scope domain.Entity, policy Policy) *Ledger[E] {
	return &Ledger[E]{
		scope:   scope,
		policy:  policy,
		entries: make(map[int]E),
	}
}

// Add merges entry into the ledger. An existing entry keeps its name and
// everything except the summed quantity.
func (l *Ledger[E]) Add(entry E) error {
	if err := l.validateAdd(entry); err != nil {
		return err
	}
	if entry.Qty() == 0 {
		return nil
	}
	if existing, ok := l.entries[entry.ItemID()]; ok {
		l.entries[entry.ItemID()] = existing.WithQuantity(existing.Qty() + entry.Qty())
		return nil
	}
	l.entries[entry.ItemID()] = entry
	return nil
}

func (l *Ledger[E]) validateAdd(entry E) error {
	qtyRule := domain.RequirePositive("quantity", entry.Qty())
	if l.policy == NonNegativeAdd {
		qtyRule = domain.RequireNonNegative("quantity", entry.Qty())
	}
	return domain.FirstError(
		domain.RequireNonNegativeID("item id", entry.ItemID()),
		domain.RequireNonEmpty("item name", entry.ItemName()),
		qtyRule,
	)
}

// Subtract removes qty from an entry, evicting it at zero.
func (l *Ledger[E]) Subtract(itemID, qty int) error {
	existing, ok := l.entries[itemID]
	if !ok {
		return domain.NotFound(l.scope, "item %d not found", itemID)
	}
	if err := domain.RequirePositive("quantity", qty); err != nil {
		return err
	}
	if existing.Qty() < qty {
		return &domain.InsufficientQuantityError{
			Entity:    l.scope,
			ItemID:    itemID,
			Available: existing.Qty(),
			Requested: qty,
		}
	}
	l.store(existing.WithQuantity(existing.Qty() - qty))
	return nil
}

// Replace overwrites an entry's quantity, evicting it at zero.
func (l *Ledger[E]) Replace(itemID, qty int) error {
	existing, ok := l.entries[itemID]
	if !ok {
		return domain.NotFound(l.scope, "item %d not found", itemID)
	}
	minimum := domain.RequirePositive("quantity", qty)
	if l.policy == NonNegativeAdd {
		minimum = domain.RequireNonNegative("quantity", qty)
	}
	if minimum != nil {
		return minimum
	}
	l.store(existing.WithQuantity(qty))
	return nil
}

func (l *Ledger[E]) store(entry E) {
	if entry.Qty() == 0 {
		delete(l.entries, entry.ItemID())
		return
	}
	l.entries[entry.ItemID()] = entry
}

// RemoveKey deletes an entry regardless of its quantity and reports whether
// it was present.
func (l *Ledger[E]) RemoveKey(itemID int) bool {
	if _, ok := l.entries[itemID]; !ok {
		return false
	}
	delete(l.entries, itemID)
	return true
}

// Get returns the entry for itemID.
func (l *Ledger[E]) Get(itemID int) (E, bool) {
	e, ok := l.entries[itemID]
	return e, ok
}

// Quantity returns the quantity on hand, 0 when absent.
func (l *Ledger[E]) Quantity(itemID int) int {
	if e, ok := l.entries[itemID]; ok {
		return e.Qty()
	}
	return 0
}

// Clear removes every entry.
func (l *Ledger[E]) Clear() {
	clear(l.entries)
}

// Len returns the number of entries.
func (l *Ledger[E]) Len() int {
	return len(l.entries)
}

// Entries returns a snapshot ordered by item id.
func (l *Ledger[E]) Entries() []E {
	keys := slices.Sorted(maps.Keys(l.entries))
	out := make([]E, 0, len(keys))
	for _, k := range keys {
		out = append(out, l.entries[k])
	}
	return out
}

// Clone returns an independent copy.
func (l *Ledger[E]) Clone() *Ledger[E] {
	return &Ledger[E]{
		scope:   l.scope,
		policy:  l.policy,
		entries: maps.Clone(l.entries),
	}
}

// Total folds weight over every entry.
func Total[E Entry[E], N domain.Number](l *Ledger[E], weight func(E) N) N {
	var sum N
	for _, e := range l.Entries() {
		sum += weight(e)
	}
	return sum
}

// Quantities is the identity weight for Total.
func Quantities[E Entry[E]](e E) int {
	return e.Qty()
}
