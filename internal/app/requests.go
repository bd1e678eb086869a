package app

import (
	"context"
	"errors"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/flags"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/tracing"
)

// ErrNothingToRestock is returned by RestockList when stock covers every
// pending request.
var ErrNothingToRestock = errors.New("stock covers every pending request")

// DefaultRestockDescription names lists created by RestockList without a
// description.
const DefaultRestockDescription = "Reposição de pedidos pendentes"

// CreateRequest opens a pending request for roomID. With the strict-room-refs
// flag on, roomID must be a registered camarim.
func (a *App) CreateRequest(ctx context.Context, roomID int, artistName string) (int, error) {
	return a.run(ctx, Op{Domain: DomainRequests, Name: "create"}, func(context.Context) (int, error) {
		if a.flags.Enabled(flags.FlagStrictRoomRefs) {
			if _, ok := a.Rooms.FindByID(roomID); !ok {
				return 0, domain.NotFound(domain.EntityCamarim, "camarim %d not found", roomID)
			}
		}
		return a.Requests.Create(roomID, artistName)
	})
}

// DispatchRequest moves every item of a pending request from stock into its
// camarim and marks the request fulfilled. Stock is checked for all items
// first; when any is short nothing changes and the first shortfall is
// returned as *domain.InsufficientQuantityError.
func (a *App) DispatchRequest(ctx context.Context, requestID int) error {
	op := Op{Domain: DomainRequests, Name: "dispatch", Touches: []Domain{DomainStock, DomainRooms}}
	_, err := a.run(ctx, op, func(ctx context.Context) (int, error) {
		req, ok := a.Requests.FindByID(requestID)
		if !ok {
			return requestID, domain.NotFound(domain.EntityRequest, "request %d not found", requestID)
		}
		if req.Fulfilled() {
			return requestID, domain.InvalidOperation(domain.EntityRequest, "request %d already fulfilled", requestID)
		}
		roomID := req.DressingRoomID()
		if _, ok := a.Rooms.FindByID(roomID); !ok {
			return requestID, domain.NotFound(domain.EntityCamarim, "camarim %d not found", roomID)
		}

		items := req.Items()
		for _, it := range items {
			if a.Stock.CheckAvailability(it.ID, it.Quantity) {
				continue
			}
			trace.SpanFromContext(ctx).AddEvent(tracing.EventPreflightFailed,
				trace.WithAttributes(attribute.Int("item.id", it.ID)))
			return requestID, &domain.InsufficientQuantityError{
				Entity:    domain.EntityStock,
				ItemID:    it.ID,
				Available: a.Stock.QuantityOf(it.ID),
				Requested: it.Quantity,
			}
		}

		for _, it := range items {
			if err := a.Stock.Issue(it.ID, it.Quantity); err != nil {
				return requestID, err
			}
			if err := a.Rooms.AddItem(roomID, it.ID, it.Name, it.Quantity); err != nil {
				return requestID, err
			}
		}
		return requestID, a.Requests.MarkFulfilled(requestID)
	})
	return err
}

// Shortfall is how many units of an item pending requests need beyond stock.
type Shortfall struct {
	ItemID    int
	Name      string
	Requested int
	InStock   int
}

func (s Shortfall) Missing() int { return s.Requested - s.InStock }

// Shortfalls sums every pending request per item and compares it to stock.
// Items fully covered are left out. Results are ordered by item id.
func (a *App) Shortfalls() []Shortfall {
	needed := make(map[int]*Shortfall)
	var order []int
	for _, req := range a.Requests.ListPending() {
		for _, it := range req.Items() {
			s, ok := needed[it.ID]
			if !ok {
				s = &Shortfall{ItemID: it.ID, Name: it.Name}
				needed[it.ID] = s
				order = append(order, it.ID)
			}
			s.Requested += it.Quantity
		}
	}

	slices.Sort(order)
	out := make([]Shortfall, 0, len(order))
	for _, id := range order {
		s := needed[id]
		s.InStock = a.Stock.QuantityOf(id)
		if s.Missing() > 0 {
			out = append(out, *s)
		}
	}
	return out
}

// RestockList creates a shopping list holding every shortfall, priced from
// the catalog. Items missing from the catalog are priced at zero.
func (a *App) RestockList(ctx context.Context, description string) (int, error) {
	if description == "" {
		description = DefaultRestockDescription
	}
	return a.run(ctx, Op{Domain: DomainShopping, Name: "restock"}, func(context.Context) (int, error) {
		short := a.Shortfalls()
		if len(short) == 0 {
			return 0, ErrNothingToRestock
		}

		id, err := a.Shopping.Create(description)
		if err != nil {
			return 0, err
		}
		for _, s := range short {
			name, price := s.Name, 0.0
			if item, ok := a.Catalog.FindByID(s.ItemID); ok {
				name, price = item.Name(), item.UnitPrice()
			}
			if err := a.Shopping.AddItem(id, s.ItemID, name, s.Missing(), price); err != nil {
				a.Shopping.Delete(id)
				return 0, err
			}
		}
		return id, nil
	})
}
