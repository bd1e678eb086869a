// Package pubsub is a small generic publish/subscribe broker. The camarim
// program uses one broker for log lines and one for venue change events.
package pubsub

import (
	"context"
	"time"
)

// EventType says what happened to the payload's subject.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"
)

// Event is a published payload stamped with its type and publish time.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber hands out buffered channels of events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher accepts events.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}

// Handler is a synchronous observer registered with Broker.Observe.
type Handler[T any] func(Event[T])
