// Package snap computes snap-point geometry for scrollable item carousels.
//
// # Overview
//
// A carousel scrolls an ordered strip of slides through a viewport along one
// axis. Each slide has one snap point: the scroll offset at which the slide
// sits aligned inside the viewport according to the configured alignment
// (start, center, or end). This package provides the pure arithmetic for
// deriving those snap points and for mapping an arbitrary scroll offset back
// to the nearest slide.
//
// All values are scalar offsets along the scroll axis; the package has no
// notion of rendering, input, or time. Callers supply slide sizes and
// positions and the viewport size, and get back plain float64 offsets.
//
// # Basic Usage
//
// Lay out slide sizes into positioned slides with [Layout], derive the snap
// points with [Points], and resolve an offset with [Nearest]:
//
//	slides := snap.Layout([]float64{30, 30, 30}, 2)
//	points := snap.Points(slides, 40, snap.AlignCenter)
//	idx := snap.Nearest(points, 17.5)
//
// # Clamping
//
// Every snap point is clamped into [0, scrollableRange] where
// scrollableRange = max(0, totalContentSize − viewportSize). When the whole
// strip fits inside the viewport, all snap points collapse to zero.
package snap
