package pubsub

import (
	"context"
	"sync"
	"time"
)

const defaultBufferSize = 64

// Broker fans events out to channel subscribers and synchronous observers.
// Channel delivery never blocks the publisher: a full subscriber misses the
// event. Observers run on the publisher's goroutine, in registration order,
// so they see every event.
type Broker[T any] struct {
	mu         sync.RWMutex
	subs       map[chan Event[T]]struct{}
	observers  []observer[T]
	nextObs    int
	closed     bool
	bufferSize int
}

type observer[T any] struct {
	id int
	fn Handler[T]
}

var (
	_ Publisher[int]  = (*Broker[int])(nil)
	_ Subscriber[int] = (*Broker[int])(nil)
)

// NewBroker creates a broker with the default per-subscriber buffer (64).
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](defaultBufferSize)
}

// NewBrokerWithBuffer creates a broker with a custom per-subscriber buffer.
func NewBrokerWithBuffer[T any](size int) *Broker[T] {
	return &Broker[T]{
		subs:       make(map[chan Event[T]]struct{}),
		bufferSize: size,
	}
}

// Subscribe returns a channel that receives every later event until ctx is
// done or the broker closes; either way the channel is closed.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := make(chan Event[T], b.bufferSize)
	if b.closed {
		close(sub)
		return sub
	}
	b.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[sub]; ok {
			delete(b.subs, sub)
			close(sub)
		}
	}()

	return sub
}

// Observe registers fn to run synchronously on every Publish. The returned
// func removes it.
func (b *Broker[T]) Observe(fn Handler[T]) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextObs++
	id := b.nextObs
	b.observers = append(b.observers, observer[T]{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, o := range b.observers {
			if o.id == id {
				b.observers = append(b.observers[:i], b.observers[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers an event. It is a no-op after Close.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}

	event := Event[T]{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	for sub := range b.subs {
		select {
		case sub <- event:
		default:
		}
	}
	observers := make([]Handler[T], len(b.observers))
	for i, o := range b.observers {
		observers[i] = o.fn
	}
	b.mu.RUnlock()

	// Outside the lock so an observer may publish or unsubscribe.
	for _, fn := range observers {
		fn(event)
	}
}

// Close closes every subscriber channel and drops all observers. Later
// Subscribe calls get an already-closed channel.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		close(sub)
	}
	b.subs = make(map[chan Event[T]]struct{})
	b.observers = nil
}

// SubscriberCount returns the number of open channel subscriptions.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
