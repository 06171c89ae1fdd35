// Package bus provides a typed, synchronous publish/subscribe message bus.
// Dispatch happens on the publisher's goroutine with no queuing, so handlers
// observe and mutate state in a well-defined order.
package bus

import (
	"errors"
	"fmt"
)

// MaxDepth is the deepest nested dispatch allowed before Publish panics.
const MaxDepth = 64

// ErrDispatchTooDeep is the panic value raised when nested publishes exceed MaxDepth.
var ErrDispatchTooDeep = errors.New("bus: nested dispatch too deep")

// Topic identifies an event type. Each game declares its own closed set of topics.
type Topic int

// Event is implemented by every message carried on the bus.
// Event types must be value types whose zero value reports their topic.
type Event interface {
	Topic() Topic
}

// Bus routes events to the handlers subscribed to their topic.
// A Bus is not safe for concurrent use.
type Bus struct {
	handlers map[Topic][]func(Event)
	depth    int
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[Topic][]func(Event))}
}

// Subscribe registers fn for events of type E.
// Handlers for the same topic run in registration order.
func Subscribe[E Event](b *Bus, fn func(E)) {
	var zero E
	topic := zero.Topic()
	b.handlers[topic] = append(b.handlers[topic], func(ev Event) {
		fn(ev.(E))
	})
}

// Publish synchronously invokes every handler subscribed to ev's topic.
// Publishing with no subscribers is a no-op. Handlers may publish further events.
func (b *Bus) Publish(ev Event) {
	hs := b.handlers[ev.Topic()]
	if len(hs) == 0 {
		return
	}

	b.depth++
	defer func() { b.depth-- }()
	if b.depth > MaxDepth {
		panic(fmt.Errorf("%w: topic %d", ErrDispatchTooDeep, ev.Topic()))
	}

	for _, h := range hs {
		h(ev)
	}
}

// Subscribers returns the number of handlers registered for topic.
func (b *Bus) Subscribers(topic Topic) int {
	return len(b.handlers[topic])
}

// Reset drops every subscription.
func (b *Bus) Reset() {
	clear(b.handlers)
}
