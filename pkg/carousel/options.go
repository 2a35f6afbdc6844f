package carousel

import "github.com/snapdeck/snapdeck/pkg/carousel/snap"

// Orientation is the scroll axis of the carousel.
type Orientation string

// Supported orientations.
const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// ParseOrientation converts a string into an Orientation. The second return
// value is false for unrecognized input, in which case callers should keep
// the orientation they already had.
func ParseOrientation(s string) (Orientation, bool) {
	switch Orientation(s) {
	case OrientationHorizontal, OrientationVertical:
		return Orientation(s), true
	}
	return "", false
}

// Align re-exports the snap package's alignment type so that engine
// consumers rarely need to import snap directly.
type Align = snap.Align

// Alignment constants re-exported from snap.
const (
	AlignStart  = snap.AlignStart
	AlignCenter = snap.AlignCenter
	AlignEnd    = snap.AlignEnd
)

// ParseAlign converts a string into an Align, mirroring ParseOrientation.
func ParseAlign(s string) (Align, bool) {
	return snap.ParseAlign(s)
}

// Options configures a carousel at construction time. The zero value is
// usable: horizontal orientation, center alignment, no loop, no gap.
type Options struct {
	// Loop wraps ScrollNext past the last slide (and ScrollPrev past the
	// first) instead of stopping at the boundary.
	Loop bool

	// Orientation selects the scroll axis. Defaults to horizontal.
	Orientation Orientation

	// Align places the selected slide inside the viewport. Defaults to
	// center.
	Align Align

	// Gap is the spacing between consecutive slides on the scroll axis.
	Gap float64

	// Plugins are initialized in order on Attach and destroyed in reverse
	// order on Destroy. Duplicate registrations are deliberately not
	// deduplicated; each entry gets its own Init/Destroy pair.
	Plugins []Plugin

	// OnReady, if set, is invoked exactly once with the carousel handle
	// after the first successful Attach.
	OnReady func(*Carousel)
}

// withDefaults fills in zero-value orientation and alignment.
func (o Options) withDefaults() Options {
	if o.Orientation == "" {
		o.Orientation = OrientationHorizontal
	}
	if o.Align == "" {
		o.Align = AlignCenter
	}
	if o.Gap < 0 {
		o.Gap = 0
	}
	return o
}
