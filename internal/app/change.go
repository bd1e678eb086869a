package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/pubsub"
)

// Domain names a venue registry. It doubles as the report kind.
type Domain string

const (
	DomainCatalog  Domain = "catalog"
	DomainStock    Domain = "stock"
	DomainArtists  Domain = "artists"
	DomainRooms    Domain = "rooms"
	DomainRequests Domain = "requests"
	DomainShopping Domain = "shopping"
)

// Domains lists every domain in menu order.
var Domains = []Domain{
	DomainCatalog,
	DomainStock,
	DomainRooms,
	DomainArtists,
	DomainRequests,
	DomainShopping,
}

// ParseDomain maps a report kind to its Domain.
func ParseDomain(s string) (Domain, error) {
	want := Domain(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range Domains {
		if d == want {
			return d, nil
		}
	}
	names := make([]string, len(Domains))
	for i, d := range Domains {
		names[i] = string(d)
	}
	return "", fmt.Errorf("unknown report kind %q (want one of %s)", s, strings.Join(names, ", "))
}

// Change is published after every successful operation.
type Change struct {
	Seq       int
	Domain    Domain
	Op        string
	ID        int
	SessionID string
	TraceID   string
	At        time.Time
}

func (c Change) String() string {
	return fmt.Sprintf("#%d %s %s.%s id=%d", c.Seq, c.At.Format("15:04:05"), c.Domain, c.Op, c.ID)
}

// eventTypeFor classifies an operation name for subscribers.
func eventTypeFor(op string) pubsub.EventType {
	switch op {
	case "register", "create", "receive":
		return pubsub.CreatedEvent
	case "delete", "remove":
		return pubsub.DeletedEvent
	default:
		return pubsub.UpdatedEvent
	}
}
