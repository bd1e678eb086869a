// Package request is the log of supply requests (pedidos) raised by dressing
// rooms. A request collects items while pending and is frozen once fulfilled.
package request

import (
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain/registry"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/ledger"
)

// Status is the lifecycle state of a request.
//
//	Pending   -> Fulfilled
//	Fulfilled -> (terminal)
type Status string

const (
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
)

var validTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusFulfilled: true,
	},
	StatusFulfilled: {},
}

func (s Status) String() string { return string(s) }

// IsValid returns true if this is a recognized Status value.
func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// CanTransitionTo reports whether s may move to target.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}
	return allowed[target]
}

// Item is one requested line. Quantity is always > 0.
type Item = ledger.Line

// Request asks for items to be moved from stock into a dressing room.
type Request struct {
	id             int
	dressingRoomID int
	artistName     string
	status         Status
	items          *ledger.Ledger[Item]
}

// NewRequest validates and builds a pending request with no items.
func NewRequest(id, dressingRoomID int, artistName string) (*Request, error) {
	if err := domain.FirstError(
		domain.RequireNonNegativeID("request id", id),
		domain.RequireNonNegativeID("camarim id", dressingRoomID),
		domain.RequireNonEmpty("artist name", artistName),
	); err != nil {
		return nil, err
	}
	return &Request{
		id:             id,
		dressingRoomID: dressingRoomID,
		artistName:     artistName,
		status:         StatusPending,
		items:          ledger.New[Item](domain.EntityRequest, ledger.PositiveAdd),
	}, nil
}

func (r *Request) ID() int             { return r.id }
func (r *Request) DressingRoomID() int { return r.dressingRoomID }
func (r *Request) ArtistName() string  { return r.artistName }
func (r *Request) Status() Status      { return r.status }
func (r *Request) Fulfilled() bool     { return r.status == StatusFulfilled }
func (r *Request) Items() []Item       { return r.items.Entries() }

// TotalItems sums quantities over the request's ledger.
func (r *Request) TotalItems() int {
	return ledger.Total(r.items, ledger.Quantities[Item])
}

func (r *Request) Clone() *Request {
	c := *r
	c.items = r.items.Clone()
	return &c
}

func (r *Request) requireEditable(action string) error {
	if r.status.IsTerminal() {
		return domain.InvalidOperation(domain.EntityRequest,
			"cannot %s request %d: already %s", action, r.id, r.status)
	}
	return nil
}

func (r *Request) transitionTo(target Status) error {
	if !r.status.CanTransitionTo(target) {
		return domain.InvalidOperation(domain.EntityRequest,
			"request %d cannot move from %s to %s", r.id, r.status, target)
	}
	r.status = target
	return nil
}

// Log owns every Request.
type Log struct {
	requests *registry.Registry[*Request]
}

// New creates an empty log.
func New() *Log {
	return &Log{requests: registry.New[*Request]()}
}

// Create opens a pending request for a room. The room id is not checked
// against the room directory here.
func (l *Log) Create(dressingRoomID int, artistName string) (int, error) {
	return l.requests.Create(func(id int) (*Request, error) {
		return NewRequest(id, dressingRoomID, artistName)
	})
}

// FindByID returns a copy of the request.
func (l *Log) FindByID(id int) (*Request, bool) {
	r, ok := l.requests.FindByID(id)
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// FindByDressingRoom returns copies of every request raised by roomID.
func (l *Log) FindByDressingRoom(roomID int) []*Request {
	return l.requests.Snapshot(func(r *Request) bool { return r.dressingRoomID == roomID })
}

// ListPending returns copies of every request not yet fulfilled.
func (l *Log) ListPending() []*Request {
	return l.requests.Snapshot(func(r *Request) bool { return r.status == StatusPending })
}

// AddItem merges qty units into a pending request.
func (l *Log) AddItem(requestID, itemID int, name string, qty int) error {
	r, err := l.get(requestID)
	if err != nil {
		return err
	}
	if err := r.requireEditable("add items to"); err != nil {
		return err
	}
	return r.items.Add(ledger.NewLine(itemID, name, qty))
}

// RemoveItem detaches an item from a pending request entirely.
func (l *Log) RemoveItem(requestID, itemID int) error {
	r, err := l.get(requestID)
	if err != nil {
		return err
	}
	if err := r.requireEditable("remove items from"); err != nil {
		return err
	}
	if !r.items.RemoveKey(itemID) {
		return domain.NotFound(domain.EntityRequest, "item %d not in request %d", itemID, requestID)
	}
	return nil
}

// MarkFulfilled moves a pending request to fulfilled. Fulfilled is terminal.
func (l *Log) MarkFulfilled(requestID int) error {
	r, err := l.get(requestID)
	if err != nil {
		return err
	}
	return r.transitionTo(StatusFulfilled)
}

// Items returns a snapshot of the request's ledger.
func (l *Log) Items(requestID int) ([]Item, error) {
	r, err := l.get(requestID)
	if err != nil {
		return nil, err
	}
	return r.Items(), nil
}

func (l *Log) get(id int) (*Request, error) {
	r, ok := l.requests.FindByID(id)
	if !ok {
		return nil, domain.NotFound(domain.EntityRequest, "request %d not found", id)
	}
	return r, nil
}

// Delete removes a request whatever its status.
func (l *Log) Delete(id int) bool {
	return l.requests.DeleteByID(id)
}

// List returns copies of every request in creation order.
func (l *Log) List() []*Request {
	return l.requests.List()
}

func (l *Log) Len() int {
	return l.requests.Len()
}
