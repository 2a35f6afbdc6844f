package carousel

// dragSession is the ephemeral record of one pointer drag. It exists from
// pointer-down to pointer-up/cancel and is never reused.
type dragSession struct {
	pointerID   int
	startCoord  float64
	startOffset float64
}

// viewport owns the scroll offset and the drag state machine. No other
// component writes the offset directly; the coordinator goes through the
// methods below so drag exclusivity holds.
type viewport struct {
	size   float64
	offset float64
	drag   *dragSession

	// smooth mirrors the host's transition styling: disabled for the
	// duration of a drag so slides track the pointer 1:1, re-enabled when
	// the drag settles. Purely advisory; the engine never waits on it.
	smooth bool
}

func (v *viewport) dragging() bool {
	return v.drag != nil
}

// beginDrag starts a session for the given pointer. A second pointer while
// a session is live is ignored (single-pointer model).
func (v *viewport) beginDrag(pointerID int, coord float64) bool {
	if v.drag != nil {
		return false
	}
	v.drag = &dragSession{
		pointerID:   pointerID,
		startCoord:  coord,
		startOffset: v.offset,
	}
	v.smooth = false
	return true
}

// moveDrag applies pointer motion 1:1 along the axis: the content follows
// the pointer, so offset = startOffset − (coord − startCoord). Motion from
// any other pointer is ignored.
func (v *viewport) moveDrag(pointerID int, coord float64) bool {
	if v.drag == nil || v.drag.pointerID != pointerID {
		return false
	}
	v.offset = v.drag.startOffset - (coord - v.drag.startCoord)
	return true
}

// endDrag destroys the session and re-enables smooth styling. The caller
// settles to the nearest snap point using the offset left behind by the
// last moveDrag.
func (v *viewport) endDrag(pointerID int) bool {
	if v.drag == nil || v.drag.pointerID != pointerID {
		return false
	}
	v.drag = nil
	v.smooth = true
	return true
}
