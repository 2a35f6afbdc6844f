package carousel

import (
	"reflect"
	"testing"
)

func TestBusOrderAndUnsubscribe(t *testing.T) {
	var b bus
	var got []string

	b.on(EventSelect, func(Payload) { got = append(got, "first") })
	sub := b.on(EventSelect, func(Payload) { got = append(got, "second") })
	b.on(EventSelect, func(Payload) { got = append(got, "third") })

	b.emit(EventSelect, Payload{})
	b.off(sub)
	b.emit(EventSelect, Payload{})

	want := []string{"first", "second", "third", "first", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("handler calls = %v, want %v", got, want)
	}
}

func TestBusIgnoresForeignEvents(t *testing.T) {
	var b bus
	calls := 0
	b.on(EventSelect, func(Payload) { calls++ })

	b.emit(EventSettle, Payload{})
	b.emit(EventResize, Payload{})
	if calls != 0 {
		t.Errorf("select handler ran %d times for other events", calls)
	}
}

func TestBusUnsubscribeDuringEmit(t *testing.T) {
	var b bus
	var got []string
	var sub Subscription

	b.on(EventSelect, func(Payload) {
		got = append(got, "first")
		b.off(sub)
	})
	sub = b.on(EventSelect, func(Payload) { got = append(got, "second") })

	// The snapshot taken at emit time still includes the handler being
	// removed; the next emit does not.
	b.emit(EventSelect, Payload{})
	b.emit(EventSelect, Payload{})

	want := []string{"first", "second", "first"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("handler calls = %v, want %v", got, want)
	}
}

func TestBusZeroSubscriptionInert(t *testing.T) {
	var b bus
	calls := 0
	b.on(EventSelect, func(Payload) { calls++ })

	b.off(Subscription{})
	b.emit(EventSelect, Payload{})
	if calls != 1 {
		t.Errorf("zero-token off removed a handler: calls = %d", calls)
	}
}

func TestBusNilHandlerRejected(t *testing.T) {
	var b bus
	sub := b.on(EventSelect, nil)
	if sub.id != 0 {
		t.Errorf("nil handler produced live subscription %+v", sub)
	}
	b.emit(EventSelect, Payload{}) // must not panic
}

func TestOnOffThroughCarousel(t *testing.T) {
	c := New(Options{Align: AlignStart})
	c.Attach(10, specs(10, 10))

	calls := 0
	sub := c.On(EventSelect, func(Payload) { calls++ })
	c.ScrollNext()
	c.Off(sub)
	c.ScrollPrev()

	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}
}
