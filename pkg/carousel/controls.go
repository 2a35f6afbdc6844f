package carousel

// Control is a previous/next affordance owned by the host. Controls receive
// the carousel handle by explicit registration (dependency injection) and
// are only ever written through SetDisabled; the engine holds registration
// references, never ownership.
type Control interface {
	SetDisabled(disabled bool)
}

// canScrollPrev reports whether backward navigation is possible. With one
// slide or fewer both directions are disabled regardless of loop.
func canScrollPrev(loop bool, selected, count int) bool {
	if count <= 1 {
		return false
	}
	return loop || selected > 0
}

// canScrollNext reports whether forward navigation is possible.
func canScrollNext(loop bool, selected, count int) bool {
	if count <= 1 {
		return false
	}
	return loop || selected < count-1
}

// controlSet is the coordinator's registration set for prev/next controls.
type controlSet struct {
	prev []Control
	next []Control
}

// sync pushes the current enabled/disabled state to every registered
// control. Called whenever selection, slide count, or loop changes.
func (cs *controlSet) sync(loop bool, selected, count int) {
	prevDisabled := !canScrollPrev(loop, selected, count)
	nextDisabled := !canScrollNext(loop, selected, count)
	for _, c := range cs.prev {
		c.SetDisabled(prevDisabled)
	}
	for _, c := range cs.next {
		c.SetDisabled(nextDisabled)
	}
}

func (cs *controlSet) clear() {
	cs.prev = nil
	cs.next = nil
}
