package bus

import (
	"errors"
	"testing"
)

const (
	topicPing Topic = iota
	topicPong
	topicLoop
	topicUnused
)

type ping struct{ N int }

func (ping) Topic() Topic { return topicPing }

type pong struct{ N int }

func (pong) Topic() Topic { return topicPong }

type loop struct{}

func (loop) Topic() Topic { return topicLoop }

type unused struct{}

func (unused) Topic() Topic { return topicUnused }

func TestPublishCallsHandlersInOrder(t *testing.T) {
	b := New()
	var order []string

	Subscribe(b, func(e ping) { order = append(order, "first") })
	Subscribe(b, func(e ping) { order = append(order, "second") })
	Subscribe(b, func(e pong) { order = append(order, "pong") })

	b.Publish(ping{N: 1})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("handler order = %v, expected [first second]", order)
	}
	if b.Subscribers(topicPing) != 2 {
		t.Errorf("Subscribers(ping) = %d, expected 2", b.Subscribers(topicPing))
	}
}

func TestPublishCarriesPayload(t *testing.T) {
	b := New()
	got := 0
	Subscribe(b, func(e ping) { got = e.N })

	b.Publish(ping{N: 42})
	if got != 42 {
		t.Errorf("payload = %d, expected 42", got)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	b := New()
	called := false
	Subscribe(b, func(e ping) { called = true })

	// Must not panic or reach other handlers
	b.Publish(unused{})
	if called {
		t.Error("publishing an unrelated topic should not invoke other handlers")
	}
}

func TestNestedPublish(t *testing.T) {
	b := New()
	var order []string

	Subscribe(b, func(e ping) {
		order = append(order, "ping")
		if e.N > 0 {
			b.Publish(pong{N: e.N - 1})
		}
		order = append(order, "ping-done")
	})
	Subscribe(b, func(e pong) {
		order = append(order, "pong")
	})

	b.Publish(ping{N: 1})

	expected := []string{"ping", "pong", "ping-done"}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("order = %v, expected %v", order, expected)
		}
	}
}

func TestUnboundedCyclePanics(t *testing.T) {
	b := New()
	Subscribe(b, func(e loop) { b.Publish(loop{}) })

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrDispatchTooDeep) {
			t.Fatalf("expected ErrDispatchTooDeep panic, got %v", r)
		}
		// Depth must unwind so the bus stays usable
		if b.depth != 0 {
			t.Errorf("depth after panic = %d, expected 0", b.depth)
		}
	}()
	b.Publish(loop{})
}

func TestReset(t *testing.T) {
	b := New()
	called := false
	Subscribe(b, func(e ping) { called = true })
	b.Reset()
	b.Publish(ping{})
	if called {
		t.Error("Reset should drop subscriptions")
	}
}
