package carousel

import "github.com/snapdeck/snapdeck/pkg/carousel/snap"

// lifecycle tracks the coordinator's attach state.
type lifecycle int

const (
	stateUninitialized lifecycle = iota
	stateReady
	stateDestroyed
)

// Carousel is the root coordinator: it composes the slide registry, the
// viewport controller, the control set, and the event bus behind one public
// API. All methods are synchronous and must run on a single goroutine.
type Carousel struct {
	opts   Options
	state  lifecycle
	bus    bus
	reg    registry
	vp     viewport
	ctl    controlSet
	sched  scheduler
	points []float64

	// selected is the aggregate selected index. Invariant: it stays in
	// [0, slideCount−1] whenever there are slides, and is pinned to 0
	// otherwise.
	selected int
}

// New creates an unattached carousel. Nothing happens until Attach.
func New(opts Options) *Carousel {
	return &Carousel{opts: opts.withDefaults()}
}

// Attach binds the carousel to a viewport of the given size with the given
// slides, moving it from Uninitialized to Ready. Plugins are initialized in
// registration order, then EventReady fires, then Options.OnReady runs.
// Attach is a no-op once the carousel is ready or destroyed.
func (c *Carousel) Attach(viewportSize float64, slides []SlideSpec) {
	if c.state != stateUninitialized {
		return
	}
	c.vp.size = viewportSize
	c.vp.smooth = true
	c.reg.set(slides, c.opts.Gap)
	c.reflow()
	c.selected = snap.ClampIndex(c.selected, c.reg.count())
	c.state = stateReady

	for _, p := range c.opts.Plugins {
		p.Init(c)
	}
	c.ctl.sync(c.opts.Loop, c.selected, c.reg.count())
	c.bus.emit(EventReady, Payload{Count: c.reg.count()})
	if c.opts.OnReady != nil {
		c.opts.OnReady(c)
	}
}

// Destroy tears the carousel down: EventDestroy fires, plugins are destroyed
// in reverse registration order exactly once, and every subsequent API call
// becomes a no-op. Destroying twice is safe.
func (c *Carousel) Destroy() {
	if c.state == stateDestroyed {
		return
	}
	wasReady := c.state == stateReady
	c.state = stateDestroyed
	if wasReady {
		c.bus.emit(EventDestroy, Payload{Count: c.reg.count()})
		for i := len(c.opts.Plugins) - 1; i >= 0; i-- {
			c.opts.Plugins[i].Destroy()
		}
	}
	c.bus.clear()
	c.ctl.clear()
	c.sched.reset()
}

func (c *Carousel) ready() bool {
	return c.state == stateReady
}

// =============================================================================
// Navigation
// =============================================================================

// ScrollTo scrolls to the slide at index i, clamped into range, and settles
// there synchronously. No-op with zero slides.
func (c *Carousel) ScrollTo(i int) {
	if !c.ready() || c.reg.count() == 0 {
		return
	}
	c.scrollToIndex(snap.ClampIndex(i, c.reg.count()))
}

// ScrollNext advances to the next slide, wrapping to the first when Loop is
// set. At the last slide without Loop it is a no-op.
func (c *Carousel) ScrollNext() {
	if !c.ready() || !canScrollNext(c.opts.Loop, c.selected, c.reg.count()) {
		return
	}
	if c.selected == c.reg.count()-1 {
		c.scrollToIndex(0)
		return
	}
	c.scrollToIndex(c.selected + 1)
}

// ScrollPrev moves to the previous slide, wrapping to the last when Loop is
// set. At the first slide without Loop it is a no-op.
func (c *Carousel) ScrollPrev() {
	if !c.ready() || !canScrollPrev(c.opts.Loop, c.selected, c.reg.count()) {
		return
	}
	if c.selected == 0 {
		c.scrollToIndex(c.reg.count() - 1)
		return
	}
	c.scrollToIndex(c.selected - 1)
}

// scrollToIndex commits offset and selection to slide i. The logical state
// changes here, synchronously; any smooth visual transition the host renders
// afterwards is cosmetic. EventSelect fires only when the index actually
// changed, EventSettle on every commit.
func (c *Carousel) scrollToIndex(i int) {
	c.vp.offset = c.points[i]
	if c.selected != i {
		c.selected = i
		c.bus.emit(EventSelect, Payload{Index: i, Count: c.reg.count()})
		c.ctl.sync(c.opts.Loop, c.selected, c.reg.count())
	}
	c.bus.emit(EventSettle, Payload{Index: i, Count: c.reg.count()})
}

// =============================================================================
// Pointer input
// =============================================================================

// PointerDown starts a drag session for the given pointer at the given
// coordinate along the scroll axis. Secondary pointers during an active
// session are ignored, as is any drag while the carousel has no slides.
func (c *Carousel) PointerDown(pointerID int, coord float64) {
	if !c.ready() || c.reg.count() == 0 {
		return
	}
	if c.vp.beginDrag(pointerID, coord) {
		c.bus.emit(EventPointerDown, Payload{})
	}
}

// PointerMove applies pointer motion to the scroll offset, 1:1 along the
// axis with no inertia. Motion without a matching session is ignored.
func (c *Carousel) PointerMove(pointerID int, coord float64) {
	if !c.ready() {
		return
	}
	c.vp.moveDrag(pointerID, coord)
}

// PointerUp ends the drag session and settles: EventPointerUp fires, then
// the nearest snap index is computed from the offset the last PointerMove
// left behind, and the carousel commits there (EventSelect if the index
// changed, then EventSettle). If the slide list was emptied during the
// drag, the session still ends but there is nothing to settle on.
func (c *Carousel) PointerUp(pointerID int) {
	if !c.ready() {
		return
	}
	if !c.vp.endDrag(pointerID) {
		return
	}
	c.bus.emit(EventPointerUp, Payload{})
	if c.reg.count() == 0 {
		return
	}
	c.scrollToIndex(snap.Nearest(c.points, c.vp.offset))
}

// PointerCancel handles pointer-cancel and loss of input ownership. The
// session transitions straight to settling; no intermediate state survives.
func (c *Carousel) PointerCancel(pointerID int) {
	c.PointerUp(pointerID)
}

// =============================================================================
// Layout notifications
// =============================================================================

// SetSlides replaces the slide list. The registry rebuilds descriptors,
// stale selection is reclamped (EventSelect if it moved), snap points are
// recomputed, and EventLayout fires with the new geometry.
func (c *Carousel) SetSlides(slides []SlideSpec) {
	if !c.ready() {
		return
	}
	c.reg.set(slides, c.opts.Gap)
	c.reflow()
	prev := c.selected
	c.selected = snap.ClampIndex(c.selected, c.reg.count())
	if c.selected != prev {
		c.bus.emit(EventSelect, Payload{Index: c.selected, Count: c.reg.count()})
	}
	c.ctl.sync(c.opts.Loop, c.selected, c.reg.count())
	c.bus.emit(EventLayout, Payload{
		Index:      c.selected,
		Count:      c.reg.count(),
		SnapPoints: c.ScrollSnapList(),
	})
}

// SetViewportSize records a new viewport size and schedules a reflow for the
// next Flush. Rapid resize bursts between frames collapse into one reflow.
func (c *Carousel) SetViewportSize(size float64) {
	if !c.ready() || size == c.vp.size {
		return
	}
	c.vp.size = size
	c.sched.request(taskReflow)
}

// SetScrollOffset applies an offset change that did not come from the active
// drag session (for example host-side inertial scrolling) and schedules a
// selection sync for the next Flush. Ignored while dragging: the drag
// session owns the offset exclusively.
func (c *Carousel) SetScrollOffset(offset float64) {
	if !c.ready() || c.vp.dragging() {
		return
	}
	c.vp.offset = offset
	c.sched.request(taskSyncSelect)
}

// Flush is the frame barrier: it runs work coalesced since the previous
// frame. Hosts call it once per rendering frame while Dirty reports true.
func (c *Carousel) Flush() {
	if !c.ready() {
		return
	}
	if c.sched.take(taskReflow) {
		c.reflow()
		prev := c.selected
		c.selected = snap.ClampIndex(c.selected, c.reg.count())
		// Resizing moves snap points relative to the retained offset, so
		// the nearest index can change even when the count did not.
		if c.reg.count() > 0 && !c.vp.dragging() {
			c.selected = snap.Nearest(c.points, c.vp.offset)
		}
		c.bus.emit(EventResize, Payload{Count: c.reg.count()})
		if c.selected != prev {
			c.bus.emit(EventSelect, Payload{Index: c.selected, Count: c.reg.count()})
			c.ctl.sync(c.opts.Loop, c.selected, c.reg.count())
		}
	}
	if c.sched.take(taskSyncSelect) {
		nearest := snap.Nearest(c.points, c.vp.offset)
		if nearest != c.selected {
			c.selected = nearest
			c.bus.emit(EventSelect, Payload{Index: nearest, Count: c.reg.count()})
			c.ctl.sync(c.opts.Loop, c.selected, c.reg.count())
		}
	}
}

// Dirty reports whether deferred work is waiting for the next Flush.
func (c *Carousel) Dirty() bool {
	return c.sched.dirty()
}

// ReInit forces a geometry recomputation and settles to the snap point
// nearest the current offset. Intended for externally driven layout changes
// the engine cannot observe. EventReInit fires after the settle.
func (c *Carousel) ReInit() {
	if !c.ready() {
		return
	}
	c.reg.relayout(c.opts.Gap)
	c.reflow()
	c.selected = snap.ClampIndex(c.selected, c.reg.count())
	if c.reg.count() > 0 {
		c.scrollToIndex(snap.Nearest(c.points, c.vp.offset))
	}
	c.bus.emit(EventReInit, Payload{Count: c.reg.count()})
}

// reflow recomputes snap points for the current slides, viewport, and
// alignment, and keeps a non-dragged offset inside the scrollable range.
func (c *Carousel) reflow() {
	c.points = snap.Points(c.reg.slides, c.vp.size, c.opts.Align)
	if !c.vp.dragging() {
		limit := snap.Range(snap.ContentSize(c.reg.slides), c.vp.size)
		c.vp.offset = snap.Clamp(c.vp.offset, 0, limit)
	}
}

// =============================================================================
// Option mutation
// =============================================================================

// SetLoop toggles wraparound navigation and resyncs controls. The selected
// index is untouched.
func (c *Carousel) SetLoop(loop bool) {
	if !c.ready() || loop == c.opts.Loop {
		return
	}
	c.opts.Loop = loop
	c.ctl.sync(c.opts.Loop, c.selected, c.reg.count())
}

// SetOrientation switches the scroll axis. Unrecognized values are silently
// ignored and the previous orientation stays in effect. The host remains
// responsible for reporting the viewport size along the new axis.
func (c *Carousel) SetOrientation(s string) {
	if !c.ready() {
		return
	}
	o, ok := ParseOrientation(s)
	if !ok || o == c.opts.Orientation {
		return
	}
	c.opts.Orientation = o
	c.reflow()
	c.ctl.sync(c.opts.Loop, c.selected, c.reg.count())
}

// SetAlign changes slide alignment and recomputes snap points immediately.
// Unrecognized values are silently ignored. The selected index is untouched;
// the offset follows the selected slide's new snap point.
func (c *Carousel) SetAlign(s string) {
	if !c.ready() {
		return
	}
	a, ok := snap.ParseAlign(s)
	if !ok || a == c.opts.Align {
		return
	}
	c.opts.Align = a
	c.reflow()
	if c.reg.count() > 0 && !c.vp.dragging() {
		c.vp.offset = c.points[c.selected]
	}
	c.ctl.sync(c.opts.Loop, c.selected, c.reg.count())
}

// SetOptions applies loop, orientation, and alignment in one call. Enum
// fields left empty or unrecognized keep their previous values; the selected
// index is never reset. Plugins and OnReady are fixed at construction and
// ignored here.
func (c *Carousel) SetOptions(opts Options) {
	if !c.ready() {
		return
	}
	c.SetLoop(opts.Loop)
	c.SetOrientation(string(opts.Orientation))
	c.SetAlign(string(opts.Align))
}

// =============================================================================
// Controls and events
// =============================================================================

// RegisterPrev adds a previous-control to the registration set and pushes
// the current enabled state to it immediately.
func (c *Carousel) RegisterPrev(ctl Control) {
	if ctl == nil || c.state == stateDestroyed {
		return
	}
	c.ctl.prev = append(c.ctl.prev, ctl)
	ctl.SetDisabled(!canScrollPrev(c.opts.Loop, c.selected, c.reg.count()))
}

// RegisterNext adds a next-control to the registration set and pushes the
// current enabled state to it immediately.
func (c *Carousel) RegisterNext(ctl Control) {
	if ctl == nil || c.state == stateDestroyed {
		return
	}
	c.ctl.next = append(c.ctl.next, ctl)
	ctl.SetDisabled(!canScrollNext(c.opts.Loop, c.selected, c.reg.count()))
}

// On subscribes a handler to an event and returns its subscription token.
func (c *Carousel) On(e Event, h Handler) Subscription {
	if c.state == stateDestroyed {
		return Subscription{}
	}
	return c.bus.on(e, h)
}

// Off removes a subscription. Unknown or zero tokens are ignored.
func (c *Carousel) Off(s Subscription) {
	c.bus.off(s)
}

// =============================================================================
// Read-only state
// =============================================================================

// SelectedScrollSnap returns the selected slide index (0 when empty).
func (c *Carousel) SelectedScrollSnap() int {
	return c.selected
}

// ScrollSnapList returns a copy of the snap points, one per slide.
func (c *Carousel) ScrollSnapList() []float64 {
	out := make([]float64, len(c.points))
	copy(out, c.points)
	return out
}

// Slides returns a copy of the slide specs in order.
func (c *Carousel) Slides() []SlideSpec {
	out := make([]SlideSpec, len(c.reg.specs))
	copy(out, c.reg.specs)
	return out
}

// SlidesInView returns the indices of slides at least partially visible in
// the viewport at the current scroll offset.
func (c *Carousel) SlidesInView() []int {
	var in []int
	for i, s := range c.reg.slides {
		lead := s.Start - c.vp.offset
		if lead < c.vp.size && lead+s.Size > 0 {
			in = append(in, i)
		}
	}
	return in
}

// Options returns the current option values. The plugin list is omitted;
// plugin lifecycle is owned by the coordinator.
func (c *Carousel) Options() Options {
	opts := c.opts
	opts.Plugins = nil
	opts.OnReady = nil
	return opts
}

// ScrollOffset returns the current scroll offset along the axis. During a
// drag this is the raw, unclamped pointer-derived value.
func (c *Carousel) ScrollOffset() float64 {
	return c.vp.offset
}

// ViewportSize returns the viewport extent along the scroll axis.
func (c *Carousel) ViewportSize() float64 {
	return c.vp.size
}

// Dragging reports whether a drag session is active.
func (c *Carousel) Dragging() bool {
	return c.vp.dragging()
}

// SmoothScroll reports whether the host should render transitions smoothly.
// False for the duration of a drag so content tracks the pointer 1:1.
func (c *Carousel) SmoothScroll() bool {
	return c.vp.smooth
}

// CanScrollPrev reports whether backward navigation is currently possible.
func (c *Carousel) CanScrollPrev() bool {
	return canScrollPrev(c.opts.Loop, c.selected, c.reg.count())
}

// CanScrollNext reports whether forward navigation is currently possible.
func (c *Carousel) CanScrollNext() bool {
	return canScrollNext(c.opts.Loop, c.selected, c.reg.count())
}
