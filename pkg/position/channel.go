// Package position receives position-update notifications posted back by an
// embedded Audiom frame. Messages arrive on a Channel — the cross-frame
// messaging mechanism, injected so tests and hosts can supply their own —
// and a Listener filters them by origin and shape before fanning the
// coordinate pair out to registered callbacks.
package position

import "sync"

// Message is one inbound cross-frame message: the origin of the sending
// frame and its raw JSON payload.
type Message struct {
	Origin string
	Data   []byte
}

// Channel delivers inbound messages to subscribed handlers. Subscribe
// returns a cancel function that removes the subscription.
type Channel interface {
	Subscribe(handler func(Message)) (cancel func())
}

// Bus is an in-memory Channel: a synchronous fan-out of published messages
// to every subscriber, in no particular order. It stands in for the
// browser's cross-document channel when the host process is the one
// relaying frame messages.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]func(Message)
	next int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Message))}
}

// Subscribe registers a handler and returns its cancel function. Cancel is
// idempotent.
func (b *Bus) Subscribe(handler func(Message)) (cancel func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = handler
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers a message synchronously to every subscriber.
func (b *Bus) Publish(m Message) {
	b.mu.RLock()
	handlers := make([]func(Message), 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()
	for _, h := range handlers {
		h(m)
	}
}

// Subscribers returns the number of active subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
