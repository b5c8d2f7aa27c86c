package position

import (
	"encoding/json"
	"sync"

	"github.com/paulmach/orb"
)

// Handler receives a position update as a [longitude, latitude] point.
// Listeners identify handlers by pointer, so register a *Handler and keep it
// to remove the registration later.
type Handler func(orb.Point)

// positionPayload is the shape an embedded frame posts back. Only messages
// carrying exactly two numbers under userPosition are dispatched.
type positionPayload struct {
	UserPosition *[]float64 `json:"userPosition"`
}

// Listener subscribes to a Channel and dispatches validated position
// updates to registered handlers.
//
// The channel subscription is lazy: it is taken when the first handler is
// added and released as soon as the last one is removed. Registering the
// same *Handler twice counts once, and dispatch follows registration order.
// Messages from a non-matching origin, or whose payload does not carry a
// two-number userPosition pair, are dropped silently — the channel is
// typically shared with unrelated page code, and noise must not surface as
// errors. A panic in one handler is recovered so delivery continues to the
// rest.
type Listener struct {
	channel Channel
	origin  string

	mu       sync.Mutex
	handlers []*Handler
	cancel   func()
}

// NewListener creates a listener on the given channel. A non-empty origin
// restricts dispatch to messages whose origin matches it exactly.
func NewListener(channel Channel, origin string) *Listener {
	return &Listener{channel: channel, origin: origin}
}

// AddListener registers a handler. Adding a handler that is already
// registered is a no-op. The first registration attaches the listener to
// its channel.
func (l *Listener) AddListener(fn *Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, h := range l.handlers {
		if h == fn {
			return
		}
	}
	l.handlers = append(l.handlers, fn)
	if l.cancel == nil {
		l.cancel = l.channel.Subscribe(l.deliver)
	}
}

// RemoveListener unregisters a handler. Removing the last handler detaches
// the listener from its channel.
func (l *Listener) RemoveListener(fn *Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, h := range l.handlers {
		if h == fn {
			l.handlers = append(l.handlers[:i], l.handlers[i+1:]...)
			break
		}
	}
	l.detachIfEmptyLocked()
}

// RemoveAll unregisters every handler and detaches from the channel.
func (l *Listener) RemoveAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = nil
	l.detachIfEmptyLocked()
}

// Close tears the listener down. Equivalent to RemoveAll.
func (l *Listener) Close() {
	l.RemoveAll()
}

func (l *Listener) detachIfEmptyLocked() {
	if len(l.handlers) == 0 && l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// deliver is the channel handler: filter by origin, check the payload
// shape, then invoke every registered handler with the coordinate pair.
func (l *Listener) deliver(m Message) {
	if l.origin != "" && m.Origin != l.origin {
		return
	}
	var payload positionPayload
	if err := json.Unmarshal(m.Data, &payload); err != nil {
		return
	}
	if payload.UserPosition == nil || len(*payload.UserPosition) != 2 {
		return
	}
	pt := orb.Point{(*payload.UserPosition)[0], (*payload.UserPosition)[1]}

	l.mu.Lock()
	handlers := make([]*Handler, len(l.handlers))
	copy(handlers, l.handlers)
	l.mu.Unlock()

	for _, fn := range handlers {
		invoke(*fn, pt)
	}
}

func invoke(fn Handler, pt orb.Point) {
	defer func() { _ = recover() }()
	fn(pt)
}
