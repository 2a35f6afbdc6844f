package snap

import "math"

// Align controls where the selected slide rests inside the viewport.
type Align string

// Supported alignments.
const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// ParseAlign converts a string into an Align. The second return value is
// false for unrecognized input, in which case callers should keep whatever
// alignment they already had.
func ParseAlign(s string) (Align, bool) {
	switch Align(s) {
	case AlignStart, AlignCenter, AlignEnd:
		return Align(s), true
	}
	return "", false
}

// Slide is one item positioned on the scroll axis. Start is the distance
// from the beginning of the content strip to the slide's leading edge.
type Slide struct {
	Size  float64
	Start float64
}

// Layout positions sizes sequentially along the axis with the given gap
// between consecutive slides. Negative sizes are treated as zero.
func Layout(sizes []float64, gap float64) []Slide {
	slides := make([]Slide, len(sizes))
	var cursor float64
	for i, size := range sizes {
		if size < 0 {
			size = 0
		}
		slides[i] = Slide{Size: size, Start: cursor}
		cursor += size
		if i < len(sizes)-1 {
			cursor += gap
		}
	}
	return slides
}

// ContentSize returns the total extent of the strip: the trailing edge of
// the last slide. Zero for an empty strip.
func ContentSize(slides []Slide) float64 {
	if len(slides) == 0 {
		return 0
	}
	last := slides[len(slides)-1]
	return last.Start + last.Size
}

// Range returns the scrollable range max(0, total−viewport). Offsets beyond
// this range would scroll past the end of the content.
func Range(total, viewport float64) float64 {
	return math.Max(0, total-viewport)
}

// Adjustment returns the alignment adjustment subtracted from a slide's raw
// start to produce its snap point. Unknown alignments behave like AlignStart.
func Adjustment(a Align, slideSize, viewportSize float64) float64 {
	switch a {
	case AlignCenter:
		return (viewportSize - slideSize) / 2
	case AlignEnd:
		return viewportSize - slideSize
	default:
		return 0
	}
}

// Points computes one snap point per slide: the slide's raw start minus the
// alignment adjustment, clamped into [0, Range]. An empty slide list yields
// an empty (non-nil) result.
func Points(slides []Slide, viewport float64, a Align) []float64 {
	points := make([]float64, len(slides))
	limit := Range(ContentSize(slides), viewport)
	for i, s := range slides {
		points[i] = Clamp(s.Start-Adjustment(a, s.Size, viewport), 0, limit)
	}
	return points
}

// Nearest returns the index of the snap point closest to offset. Ties break
// toward the lower index. An empty point list resolves to 0.
func Nearest(points []float64, offset float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, p := range points {
		if d := math.Abs(p - offset); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Clamp bounds v into [lo, hi]. If hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// ClampIndex bounds an index into [0, count−1]. With zero items it returns 0.
func ClampIndex(i, count int) int {
	if count <= 0 || i < 0 {
		return 0
	}
	if i > count-1 {
		return count - 1
	}
	return i
}
