package app

import (
	"sync"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/pubsub"
)

// Audit keeps the most recent changes in a fixed-size ring.
type Audit struct {
	mu       sync.Mutex
	entries  []Change
	next     int
	full     bool
	capacity int
}

// NewAudit creates a ring holding up to capacity changes. capacity must be
// positive.
func NewAudit(capacity int) *Audit {
	return &Audit{
		entries:  make([]Change, capacity),
		capacity: capacity,
	}
}

// Record stores ev's change, dropping the oldest when full. It is the
// observer registered on the app's change broker.
func (a *Audit) Record(ev pubsub.Event[Change]) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.entries[a.next] = ev.Payload
	a.next = (a.next + 1) % a.capacity
	if a.next == 0 {
		a.full = true
	}
}

// Entries returns the recorded changes, oldest first.
func (a *Audit) Entries() []Change {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.full {
		out := make([]Change, a.next)
		copy(out, a.entries[:a.next])
		return out
	}
	out := make([]Change, 0, a.capacity)
	out = append(out, a.entries[a.next:]...)
	return append(out, a.entries[:a.next]...)
}

// Len returns how many changes are held.
func (a *Audit) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.full {
		return a.capacity
	}
	return a.next
}
