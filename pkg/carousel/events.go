package carousel

// Event names an engine notification. Handlers subscribe per event via
// Carousel.On and are invoked synchronously, in registration order, at the
// point the state change happens.
type Event string

// Events emitted by the engine.
const (
	// EventSelect fires when the selected index changes, with Index and
	// Count set. It never fires twice for the same transition.
	EventSelect Event = "select"

	// EventSettle fires when a scroll commits to a snap point, with Index
	// set. Settling is synchronous: by the time handlers run, the logical
	// state has already changed.
	EventSettle Event = "settle"

	// EventResize fires after a coalesced viewport-resize reflow, with
	// Count set.
	EventResize Event = "resize"

	// EventLayout fires after a structural rebuild of the slide registry,
	// with Index, Count, and SnapPoints set.
	EventLayout Event = "layout"

	// EventPointerDown fires when a drag session starts.
	EventPointerDown Event = "pointerDown"

	// EventPointerUp fires when a drag session ends, before the settle
	// that follows it.
	EventPointerUp Event = "pointerUp"

	// EventReady fires once, after the first successful Attach.
	EventReady Event = "ready"

	// EventReInit fires after ReInit has recomputed geometry and settled.
	EventReInit Event = "reInit"

	// EventDestroy fires at the start of Destroy, before plugins are torn
	// down, so subscribers can release resources.
	EventDestroy Event = "destroy"
)

// Payload carries event data. Fields are populated per event as documented
// on the Event constants; unused fields are zero.
type Payload struct {
	Index      int
	Count      int
	SnapPoints []float64
}

// Handler receives event payloads.
type Handler func(Payload)

// Subscription identifies one registered handler. The zero value is inert:
// passing it to Off does nothing.
type Subscription struct {
	event Event
	id    int
}

// busEntry pairs a handler with its subscription id.
type busEntry struct {
	id int
	fn Handler
}

// bus is a typed publish/subscribe registry keyed by event name. Handlers
// are comparable only through subscription ids, which keeps teardown
// deterministic (Go funcs themselves cannot be compared).
type bus struct {
	nextID   int
	handlers map[Event][]busEntry
}

func (b *bus) on(e Event, h Handler) Subscription {
	if h == nil {
		return Subscription{}
	}
	if b.handlers == nil {
		b.handlers = make(map[Event][]busEntry)
	}
	b.nextID++
	b.handlers[e] = append(b.handlers[e], busEntry{id: b.nextID, fn: h})
	return Subscription{event: e, id: b.nextID}
}

func (b *bus) off(s Subscription) {
	if s.id == 0 || b.handlers == nil {
		return
	}
	entries := b.handlers[s.event]
	for i, entry := range entries {
		if entry.id == s.id {
			b.handlers[s.event] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// emit invokes handlers registered for e, in registration order. It iterates
// over a snapshot so handlers may subscribe or unsubscribe mid-emission;
// handlers removed during emission still receive the current event.
func (b *bus) emit(e Event, p Payload) {
	entries := b.handlers[e]
	snapshot := make([]busEntry, len(entries))
	copy(snapshot, entries)
	for _, entry := range snapshot {
		entry.fn(p)
	}
}

// clear drops every handler for every event.
func (b *bus) clear() {
	b.handlers = nil
}
